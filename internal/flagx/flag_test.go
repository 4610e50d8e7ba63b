package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-a", "-d"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "keeps allowed flag with separate value",
			args: []string{"-a", ":5000", "-x", "junk"},
			want: []string{"-a", ":5000"},
		},
		{
			name: "keeps allowed flag with equals value",
			args: []string{"-d=postgres://u@h/db", "-q=1"},
			want: []string{"-d=postgres://u@h/db"},
		},
		{
			name: "drops unknown flags entirely",
			args: []string{"-z", "v", "--other=1"},
			want: []string{},
		},
		{
			name: "flag without value survives",
			args: []string{"-a", "-d", "dsn"},
			want: []string{"-a", "-d", "dsn"},
		},
		{
			name: "empty input",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short flag", []string{"app", "-c", "conf.json"}, "conf.json"},
		{"long flag", []string{"app", "-config=server.json"}, "server.json"},
		{"absent", []string{"app", "-a", ":5000"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
