package ports

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) (bool, error)
}
