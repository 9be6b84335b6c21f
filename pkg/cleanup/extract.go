package cleanup

import (
	"net/url"
	"path"
	"strings"
)

// ExtractFilename derives the bare on-disk filename from a stored reference.
//
// References come in three shapes, all of which resolve to the same upload:
//
//	https://cdn.example.com/uploads/photo.png  (absolute URL)
//	/uploads/photo.png                         (root-relative path)
//	photo.png                                  (bare filename)
//
// For absolute URLs the filename is the final segment of the decoded URL
// path, so query strings and fragments never leak into the result. Anything
// that fails to parse as a URL is treated as a plain path. The function never
// errors; it returns "" when the input has no usable final segment (empty
// input, a URL with no path, a lone separator).
func ExtractFilename(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	segment := ref
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		// Well-formed absolute URL: the filename can only come from the
		// path component. A URL without one ("https://cdn.example.com")
		// references no file.
		segment = u.Path
	}

	name := path.Base(segment)
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	return name
}
