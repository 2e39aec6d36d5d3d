// Package paths derives output file names from input file names.
//
// The text file for "dir/name.ext" is "dir/name_ext.txt", and decoding reverses the
// substitution. Both '/' and '\' separate directories regardless of the host OS so that
// text files produced on one platform decode to the same names on another.
//
// The inverse is lossy: an original name that already contains underscores comes back
// with dots in their place ("my_file.bin" -> "my_file_bin.txt" -> "my.file.bin").
package paths

import "strings"

// TextExt is the extension appended to every encoded text file.
const TextExt = ".txt"

// DeriveTextPath returns the text file path used when encoding binaryPath.
// Empty paths and paths ending in a separator are returned unchanged.
func DeriveTextPath(binaryPath string) string {
	dir, name := split(binaryPath)
	if name == "" {
		return binaryPath
	}
	return dir + strings.ReplaceAll(name, ".", "_") + TextExt
}

// DeriveBinaryPath returns the binary file path restored from textPath.
// The trailing ".txt" is dropped, or the last extension when the name has no ".txt".
// Empty paths and paths ending in a separator are returned unchanged.
func DeriveBinaryPath(textPath string) string {
	dir, name := split(textPath)
	if name == "" {
		return textPath
	}
	stem := stripExt(name)
	if stem == "" {
		return textPath
	}
	return dir + strings.ReplaceAll(stem, "_", ".")
}

// Base returns the final element of p, honouring both separator styles.
func Base(p string) string {
	_, name := split(p)
	return name
}

// Sibling returns name placed in the directory of p.
func Sibling(p, name string) string {
	dir, _ := split(p)
	return dir + name
}

// split returns the directory prefix (with its trailing separator) and the final element.
func split(p string) (dir, name string) {
	i := strings.LastIndexAny(p, `/\`)
	return p[:i+1], p[i+1:]
}

func stripExt(name string) string {
	if strings.HasSuffix(name, TextExt) {
		return strings.TrimSuffix(name, TextExt)
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
