package pager

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// Run calls fn with a buffered writer on stdout, paged if possible. Pager
// configuration errors are returned before fn runs; a pager that fails to
// start is logged and fn's output goes to stdout unpaged.
func (p *Pager) Run(fn func(w io.Writer) error) (err error) {
	h, setupErr := p.Setup()
	if setupErr != nil {
		var cfgErr *ConfigError
		if errors.As(setupErr, &cfgErr) {
			return setupErr
		}
		p.logger.Warn("pager unavailable, writing directly", "error", setupErr)
	}
	defer func() {
		if closeErr := h.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	out := bufio.NewWriter(os.Stdout)
	h.AddFlusher(out)
	if err := fn(out); err != nil {
		_ = out.Flush()
		return err
	}
	return out.Flush()
}
