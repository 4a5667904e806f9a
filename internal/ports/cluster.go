package ports

import "context"

// Cluster exposes the read-only Kubernetes checks performed before chart
// deploys.
type Cluster interface {
	// CurrentContext returns the active kubeconfig context name.
	CurrentContext() (string, error)
	// NamespaceExists reports whether a namespace exists in the cluster.
	NamespaceExists(ctx context.Context, namespace string) (bool, error)
}
