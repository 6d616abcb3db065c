// Package toolchain discovers the default target of the native code generation backend
// by parsing the host triple from its version output.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/zerr"
)

const defaultProbeTimeout = 30 * time.Second

var hostPattern = regexp.MustCompile(`(?m)Host:\s*(.*)$`)

// execCommandContext is swapped out in tests.
var execCommandContext = exec.CommandContext

// HostResolver implements ports.HostResolver by running the backend's version query.
type HostResolver struct {
	cache   *HostCache
	timeout time.Duration
}

// Option configures a HostResolver.
type Option func(*HostResolver)

// WithTimeout bounds every probe by d.
func WithTimeout(d time.Duration) Option {
	return func(r *HostResolver) {
		r.timeout = d
	}
}

// WithCache makes the resolver share an existing cache.
func WithCache(c *HostCache) Option {
	return func(r *HostResolver) {
		r.cache = c
	}
}

// NewHostResolver creates a HostResolver with its own cache.
func NewHostResolver(opts ...Option) *HostResolver {
	r := &HostResolver{
		cache:   NewHostCache(),
		timeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cache returns the resolver's host triple cache.
func (r *HostResolver) Cache() *HostCache {
	return r.cache
}

// Host returns the host triple reported by the backend under llvmHome.
// The first successful probe per llvmHome is memoized; failures are not.
func (r *HostResolver) Host(ctx context.Context, llvmHome string) (string, error) {
	return r.cache.loadOrProbe(llvmHome, func() (string, error) {
		return r.probe(ctx, llvmHome)
	})
}

// ResolveOS returns the operating system the backend targets by default.
func (r *HostResolver) ResolveOS(ctx context.Context, llvmHome string) (domain.OS, error) {
	host, err := r.Host(ctx, llvmHome)
	if err != nil {
		return "", err
	}
	return domain.ParseOS(host)
}

// ResolveArch returns the architecture the backend targets by default.
func (r *HostResolver) ResolveArch(ctx context.Context, llvmHome string) (domain.Arch, error) {
	host, err := r.Host(ctx, llvmHome)
	if err != nil {
		return "", err
	}
	return domain.ParseArch(host)
}

// Resolve returns both the operating system and the architecture.
func (r *HostResolver) Resolve(ctx context.Context, llvmHome string) (domain.OS, domain.Arch, error) {
	targetOS, err := r.ResolveOS(ctx, llvmHome)
	if err != nil {
		return "", "", err
	}
	arch, err := r.ResolveArch(ctx, llvmHome)
	if err != nil {
		return "", "", err
	}
	return targetOS, arch, nil
}

// ProbeCommand returns the backend binary queried for llvmHome.
func ProbeCommand(llvmHome string) string {
	if llvmHome == "" {
		return domain.ProbeBinary
	}
	bin := filepath.Join(llvmHome, domain.BinDirName, domain.ProbeBinary)
	if abs, err := filepath.Abs(bin); err == nil {
		return abs
	}
	return bin
}

// ParseHost extracts the trimmed value of the first "Host:" line in output.
func ParseHost(output string) (string, bool) {
	m := hostPattern.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func (r *HostResolver) probe(ctx context.Context, llvmHome string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	bin := ProbeCommand(llvmHome)
	command := bin + " --version"

	//nolint:gosec // the binary is the configured backend
	cmd := execCommandContext(ctx, bin, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil && !acceptedExit(err) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", zerr.With(zerr.Wrap(domain.ErrProbeFailed, fmt.Sprintf("%s: %v", command, err)), "command", command)
	}

	host, ok := ParseHost(string(output))
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrHostNotFound, command), "command", command)
	}
	return host, nil
}

// acceptedExit reports whether err is an exit status the backend uses for a successful version query.
func acceptedExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 1
}
