package core

import (
	"context"
	"fmt"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

// EnvironmentEnsurer guards chart deploys against the wrong cluster: the
// active kubeconfig context must match the environment's declared context,
// and every target namespace must already exist. Namespaces are never
// created implicitly.
type EnvironmentEnsurer struct {
	cluster ports.Cluster
}

func ProvideEnvironmentEnsurer(cluster ports.Cluster) EnvironmentEnsurer {
	return EnvironmentEnsurer{cluster: cluster}
}

func (ee *EnvironmentEnsurer) EnsureExpectedClusterIsSelected(env *domain.EnvironmentConfig) error {
	if env.KubeContext == "" {
		return nil
	}

	current, err := ee.cluster.CurrentContext()
	if err != nil {
		return fmt.Errorf("failed to read current kube context: %v", err)
	}
	if current != env.KubeContext {
		return fmt.Errorf(
			"environment %q deploys to kube context %q but %q is active, switch contexts before deploying",
			env.Name, env.KubeContext, current,
		)
	}
	return nil
}

func (ee *EnvironmentEnsurer) EnsureNamespacesExist(ctx context.Context, env *domain.EnvironmentConfig) error {
	seen := map[string]bool{}
	for _, chart := range env.Charts {
		if chart.Namespace == "" || seen[chart.Namespace] {
			continue
		}
		seen[chart.Namespace] = true

		exists, err := ee.cluster.NamespaceExists(ctx, chart.Namespace)
		if err != nil {
			return fmt.Errorf("failed to check namespace %q: %v", chart.Namespace, err)
		}
		if !exists {
			return fmt.Errorf("namespace %q does not exist in the target cluster, create it before deploying", chart.Namespace)
		}
	}
	return nil
}
