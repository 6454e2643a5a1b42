package pager

// Resolve picks the pager command line. The second result is false when no
// pager should run: DisableEnv is set, or nothing is configured and the
// fallback is not on PATH. A returned command is never empty.
//
// Precedence: Config.Override, $Config.EnvVar, Config.Default, Config.Fallback.
func (p *Pager) Resolve() (string, bool) {
	if _, disabled := p.sys.LookupEnv(DisableEnv); disabled {
		return "", false
	}
	if p.cfg.Override != "" {
		return p.cfg.Override, true
	}
	if v, ok := p.sys.LookupEnv(p.cfg.EnvVar); ok && v != "" {
		return v, true
	}
	if p.cfg.Default != "" {
		return p.cfg.Default, true
	}
	if _, err := p.sys.LookPath(p.cfg.Fallback); err != nil {
		return "", false
	}
	return p.cfg.Fallback, true
}
