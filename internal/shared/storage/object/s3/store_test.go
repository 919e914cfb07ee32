package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "site/result.json", want: "site/result.json"},
		{name: "simple prefix", prefix: "audits", key: "site/result.json", want: "audits/site/result.json"},
		{name: "prefix trailing slash", prefix: "audits/", key: "site/result.json", want: "audits/site/result.json"},
		{name: "prefix and key slashes", prefix: "/audits/", key: "/site/result.json", want: "audits/site/result.json"},
		{name: "nested prefix", prefix: "audits/raw", key: "site/result.json", want: "audits/raw/site/result.json"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
