package utils

import (
	"os"
	"strings"
)

// IsRunningInContainer detects if the CLI is running inside a container
func IsRunningInContainer() bool {
	if v := os.Getenv("OSINT_IN_CONTAINER"); v != "" {
		return v == "true"
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if data, err := os.ReadFile("/proc/self/cgroup"); err == nil {
		content := string(data)
		if strings.Contains(content, "docker") ||
			strings.Contains(content, "kubepods") ||
			strings.Contains(content, "containerd") {
			return true
		}
	}

	return os.Getenv("KUBERNETES_SERVICE_HOST") != ""
}
