package cleanup

import "testing"

func TestExtractFilename(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "absolute URL",
			ref:  "https://api.wizzzey.com/uploads/photo.png",
			want: "photo.png",
		},
		{
			name: "absolute URL with query",
			ref:  "https://cdn.example.com/uploads/banner.jpg?w=1200&q=80",
			want: "banner.jpg",
		},
		{
			name: "absolute URL with fragment",
			ref:  "https://cdn.example.com/uploads/diagram.svg#layer2",
			want: "diagram.svg",
		},
		{
			name: "absolute URL with encoded space",
			ref:  "https://cdn.example.com/uploads/summer%20sale.png",
			want: "summer sale.png",
		},
		{
			name: "root-relative path",
			ref:  "/uploads/photo.png",
			want: "photo.png",
		},
		{
			name: "bare filename",
			ref:  "photo.png",
			want: "photo.png",
		},
		{
			name: "relative nested path",
			ref:  "uploads/2024/photo.png",
			want: "photo.png",
		},
		{
			name: "protocol-relative reference",
			ref:  "//cdn.example.com/uploads/logo.webp",
			want: "logo.webp",
		},
		{
			name: "surrounding whitespace",
			ref:  "  /uploads/padded.gif\t",
			want: "padded.gif",
		},
		{
			name: "unparseable URL falls back to path handling",
			ref:  "http://bad host/uploads/rescued.jpg",
			want: "rescued.jpg",
		},
		{
			name: "empty reference",
			ref:  "",
			want: "",
		},
		{
			name: "whitespace only",
			ref:  "   ",
			want: "",
		},
		{
			name: "bare slash",
			ref:  "/",
			want: "",
		},
		{
			name: "current directory",
			ref:  ".",
			want: "",
		},
		{
			name: "parent directory",
			ref:  "..",
			want: "",
		},
		{
			name: "URL without path",
			ref:  "https://cdn.example.com",
			want: "",
		},
		{
			name: "URL ending in slash",
			ref:  "https://cdn.example.com/uploads/",
			want: "uploads",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFilename(tt.ref); got != tt.want {
				t.Errorf("ExtractFilename(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

// A file referenced once by full URL and once by root-relative path is the
// same file; both shapes must resolve to the same name or the resolver would
// flag a live file as orphaned.
func TestExtractFilenameAgreesAcrossReferenceShapes(t *testing.T) {
	refs := []string{
		"https://api.wizzzey.com/uploads/photo.png",
		"/uploads/photo.png",
		"photo.png",
	}

	for _, ref := range refs {
		if got := ExtractFilename(ref); got != "photo.png" {
			t.Errorf("ExtractFilename(%q) = %q, want %q", ref, got, "photo.png")
		}
	}
}
