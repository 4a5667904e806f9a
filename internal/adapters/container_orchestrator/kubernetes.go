package container_orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"rops/internal/ports"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// Kubernetes implements the read-only cluster checks run before deploys.
type Kubernetes struct {
	clientSet      *kubernetes.Clientset
	currentContext string
}

func ProvideKubernetes() (*Kubernetes, error) {
	kubeConfigPath := os.Getenv("KUBECONFIG")
	if kubeConfigPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %v", err)
		}
		kubeConfigPath = filepath.Join(home, ".kube", "config")
	}

	rawConfig, err := clientcmd.LoadFromFile(kubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %v", err)
	}

	kubeConfig, err := clientcmd.BuildConfigFromFlags("", kubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes config: %v", err)
	}

	clientSet, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %v", err)
	}

	return &Kubernetes{
		clientSet:      clientSet,
		currentContext: rawConfig.CurrentContext,
	}, nil
}

// CurrentContext returns the active kubeconfig context name.
func (k *Kubernetes) CurrentContext() (string, error) {
	if k.currentContext == "" {
		return "", fmt.Errorf("no current context set in kubeconfig")
	}
	return k.currentContext, nil
}

// NamespaceExists reports whether a namespace exists in the cluster.
func (k *Kubernetes) NamespaceExists(ctx context.Context, namespace string) (bool, error) {
	_, err := k.clientSet.CoreV1().Namespaces().Get(ctx, namespace, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up namespace %q: %v", namespace, err)
	}
	return true, nil
}

var _ ports.Cluster = (*Kubernetes)(nil)
