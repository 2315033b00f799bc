package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	configFlags := []string{"-c", "--config"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "localhost"}, configFlags, []string{"-c", "conf.json"}},
		{"equals form", []string{"--config=alt.json", "-a", "localhost"}, configFlags, []string{"--config=alt.json"}},
		{"equals value starting with dash", []string{"--config=--weird.json"}, configFlags, []string{"--config=--weird.json"}},
		{"mixed forms keep order", []string{"--config=first.json", "-c", "second.json", "-x", "1"}, configFlags, []string{"--config=first.json", "-c", "second.json"}},
		{"repeated flag", []string{"-c", "one.json", "-c", "two.json"}, []string{"-c"}, []string{"-c", "one.json", "-c", "two.json"}},
		{"several allowed flags", []string{"-a", "localhost:8080", "-c", "conf.json", "--other", "x"}, []string{"-c", "-a"}, []string{"-a", "localhost:8080", "-c", "conf.json"}},
		{"trailing flag without value", []string{"-c"}, configFlags, []string{"-c"}},
		{"next flag is not a value", []string{"-c", "-notvalue"}, configFlags, []string{"-c"}},
		{"next allowed flag is not a value", []string{"-c", "--config=alt.json"}, configFlags, []string{"-c", "--config=alt.json"}},
		{"unknown flags and positionals dropped", []string{"-x", "1", "--y=2", "positional"}, configFlags, []string{}},
		{"no args", []string{}, configFlags, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestStringFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"long", []string{"-x", "1", "-level", "debug"}, "debug"},
		{"short", []string{"-v", "warn"}, "warn"},
		{"equals form", []string{"-level=error"}, "error"},
		{"last one wins", []string{"-v", "info", "-level", "debug"}, "debug"},
		{"absent", []string{"-x", "1"}, ""},
		{"missing value", []string{"-level"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringFlag(tt.args, "v", "level", "log level"))
		})
	}
}

func TestOSArgsFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		read func() string
		want string
	}{
		{"config short", []string{"-c", "/path/short.json"}, JsonConfigFlags, "/path/short.json"},
		{"config long", []string{"-config", "/path/long.json"}, JsonConfigFlags, "/path/long.json"},
		{"config last wins", []string{"-c", "/path/1.json", "-config", "/path/2.json"}, JsonConfigFlags, "/path/2.json"},
		{"config absent", []string{"-x", "1", "-y", "2"}, JsonConfigFlags, ""},
		{"env short", []string{"-e", "/srv/.env", "-a", ":50051"}, EnvFileFlags, "/srv/.env"},
		{"env long with equals", []string{"-env=/srv/prod.env"}, EnvFileFlags, "/srv/prod.env"},
		{"config does not leak into env", []string{"-c", "/path/conf.json"}, EnvFileFlags, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = append([]string{"testbin"}, tt.args...)
			assert.Equal(t, tt.want, tt.read())
		})
	}
}
