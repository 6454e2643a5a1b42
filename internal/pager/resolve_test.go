package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		env    fakeEnv
		noMore bool
		want   string
		wantOK bool
	}{
		{
			name:   "fallback when nothing configured",
			want:   "more",
			wantOK: true,
		},
		{
			name:   "no fallback on PATH",
			noMore: true,
		},
		{
			name:   "PAGER env",
			env:    fakeEnv{"PAGER": "less -R"},
			want:   "less -R",
			wantOK: true,
		},
		{
			name:   "override beats env and default",
			cfg:    Config{Override: "now_or_never", Default: "more_or_less"},
			env:    fakeEnv{"PAGER": "something_else"},
			want:   "now_or_never",
			wantOK: true,
		},
		{
			name:   "env beats default",
			cfg:    Config{Default: "more_or_less"},
			env:    fakeEnv{"PAGER": "something_else"},
			want:   "something_else",
			wantOK: true,
		},
		{
			name:   "default without env",
			cfg:    Config{Default: "more_or_less"},
			want:   "more_or_less",
			wantOK: true,
		},
		{
			name:   "empty env falls through to default",
			cfg:    Config{Default: "more_or_less"},
			env:    fakeEnv{"PAGER": ""},
			want:   "more_or_less",
			wantOK: true,
		},
		{
			name:   "custom env var",
			cfg:    Config{EnvVar: "TOOL_PAGER"},
			env:    fakeEnv{"PAGER": "less", "TOOL_PAGER": "most"},
			want:   "most",
			wantOK: true,
		},
		{
			name:   "custom fallback",
			cfg:    Config{Fallback: "less"},
			env:    fakeEnv{},
			noMore: true,
		},
		{
			name: "NOPAGER empty disables everything",
			cfg:  Config{Override: "now_or_never", Default: "more_or_less"},
			env:  fakeEnv{"NOPAGER": "", "PAGER": "less"},
		},
		{
			name: "NOPAGER with value disables",
			env:  fakeEnv{"NOPAGER": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			for k, v := range tt.env {
				h.env[k] = v
			}
			if tt.noMore {
				delete(h.path, "more")
			}

			got, ok := h.pager(tt.cfg).Resolve()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.NotEmpty(t, got)
			}
		})
	}
}

func TestResolve_CustomFallbackOnPath(t *testing.T) {
	h := newHarness(t)
	h.path["less"] = true

	got, ok := h.pager(Config{Fallback: "less"}).Resolve()
	assert.True(t, ok)
	assert.Equal(t, "less", got)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr error
	}{
		{name: "single word", line: "more", want: []string{"more"}},
		{name: "with flag", line: "less -R", want: []string{"less", "-R"}},
		{name: "quoted argument", line: `less -P "page %d"`, want: []string{"less", "-P", "page %d"}},
		{name: "single quotes", line: `'/opt/my pager/bin/pg' -x`, want: []string{"/opt/my pager/bin/pg", "-x"}},
		{name: "unbalanced quote", line: `"less -R`, wantErr: ErrMalformedCommand},
		{name: "trailing escape", line: `less \`, wantErr: ErrMalformedCommand},
		{name: "blank", line: "   ", wantErr: ErrEmptyCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			if tt.wantErr != nil {
				var cfgErr *ConfigError
				assert.ErrorAs(t, err, &cfgErr)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
