package toolchain

import "github.com/puzpuzpuz/xsync/v3"

// HostCache memoizes host triples keyed by backend home directory.
// The empty key stands for the backend found on PATH.
type HostCache struct {
	hosts *xsync.MapOf[string, string]
}

// NewHostCache creates an empty HostCache.
func NewHostCache() *HostCache {
	return &HostCache{
		hosts: xsync.NewMapOf[string, string](),
	}
}

// Get returns the memoized host triple for llvmHome.
func (c *HostCache) Get(llvmHome string) (string, bool) {
	return c.hosts.Load(llvmHome)
}

// Reset forgets every memoized host triple.
func (c *HostCache) Reset() {
	c.hosts.Clear()
}

// loadOrProbe returns the memoized triple for llvmHome or runs probe exactly once
// among concurrent callers. A failed probe leaves the cache untouched.
func (c *HostCache) loadOrProbe(llvmHome string, probe func() (string, error)) (string, error) {
	var probeErr error
	host, _ := c.hosts.LoadOrTryCompute(llvmHome, func() (string, bool) {
		h, err := probe()
		if err != nil {
			probeErr = err
			return "", true
		}
		return h, false
	})
	if probeErr != nil {
		return "", probeErr
	}
	return host, nil
}
