package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json tagged fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "no fence",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "\n  ```json\n{\"a\": 1}\n```  \n",
			want: `{"a": 1}`,
		},
		{
			name: "single line fence",
			in:   "```json{\"a\": 1}```",
			want: `{"a": 1}`,
		},
		{
			name: "trailing prose trimmed by fence only",
			in:   "```\n[1, 2]\n```",
			want: "[1, 2]",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}
