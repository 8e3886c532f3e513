// Package filetype maps path extensions to reverse-DNS type identifiers.
package filetype

import (
	"path/filepath"
	"sort"
	"strings"
)

// FileType is an immutable type identifier such as "public.png" or
// "com.adobe.pdf". Two file types are equal when their identifiers are equal.
type FileType struct {
	identifier string
}

// New returns the file type with the given identifier. The identifier does
// not have to be registered.
func New(identifier string) FileType {
	return FileType{identifier: identifier}
}

// Identifier returns the reverse-DNS identifier of the type.
func (t FileType) Identifier() string {
	return t.identifier
}

// IsZero reports whether t is the zero FileType.
func (t FileType) IsZero() bool {
	return t.identifier == ""
}

func (t FileType) String() string {
	return t.identifier
}

// PreferredExtension returns the type's preferred filename extension, without
// a leading dot, or "" for types without one.
func (t FileType) PreferredExtension() string {
	entry, ok := registry[t.identifier]
	if !ok || len(entry.extensions) == 0 {
		return ""
	}
	return entry.extensions[0]
}

// Conforms reports whether t is super or descends from it.
func (t FileType) Conforms(super FileType) bool {
	if t == super {
		return true
	}
	entry, ok := registry[t.identifier]
	if !ok {
		return false
	}
	for _, parent := range entry.parents {
		if New(parent).Conforms(super) {
			return true
		}
	}
	return false
}

// Abstract base types.
var (
	Data   = New("public.data")
	Folder = New("public.folder")
	Image  = New("public.image")
)

// Concrete types.
var (
	BMP     = New("com.microsoft.bmp")
	GIF     = New("com.compuserve.gif")
	ICNS    = New("com.apple.icns")
	ICO     = New("com.microsoft.ico")
	Iconset = New("com.apple.iconset")
	JPEG    = New("public.jpeg")
	PDF     = New("com.adobe.pdf")
	PNG     = New("public.png")
	SVG     = New("public.svg-image")
	TIFF    = New("public.tiff")
	WebP    = New("org.webmproject.webp")
)

type entry struct {
	extensions []string
	parents    []string
	// decodable types are accepted as pipeline input.
	decodable bool
}

var registry = map[string]entry{
	Data.identifier:   {},
	Folder.identifier: {},
	Image.identifier:  {parents: []string{Data.identifier}},

	BMP.identifier:     {extensions: []string{"bmp", "dib"}, parents: []string{Image.identifier}, decodable: true},
	GIF.identifier:     {extensions: []string{"gif"}, parents: []string{Image.identifier}, decodable: true},
	ICNS.identifier:    {extensions: []string{"icns"}, parents: []string{Image.identifier}},
	ICO.identifier:     {extensions: []string{"ico"}, parents: []string{Image.identifier}, decodable: true},
	Iconset.identifier: {extensions: []string{"iconset"}, parents: []string{Folder.identifier}},
	JPEG.identifier:    {extensions: []string{"jpeg", "jpg", "jpe"}, parents: []string{Image.identifier}, decodable: true},
	PDF.identifier:     {extensions: []string{"pdf"}, parents: []string{Data.identifier}, decodable: true},
	PNG.identifier:     {extensions: []string{"png"}, parents: []string{Image.identifier}, decodable: true},
	SVG.identifier:     {extensions: []string{"svg"}, parents: []string{Image.identifier}, decodable: true},
	TIFF.identifier:    {extensions: []string{"tiff", "tif"}, parents: []string{Image.identifier}, decodable: true},
	WebP.identifier:    {extensions: []string{"webp"}, parents: []string{Image.identifier}, decodable: true},
}

// byExtension is built once from registry; each extension maps to exactly one
// identifier.
var byExtension = func() map[string]string {
	m := make(map[string]string)
	for id, e := range registry {
		for _, ext := range e.extensions {
			m[ext] = id
		}
	}
	return m
}()

// FromExtension classifies a bare or dotted extension, case-insensitively.
func FromExtension(ext string) (FileType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return FileType{}, false
	}
	id, ok := byExtension[ext]
	if !ok {
		return FileType{}, false
	}
	return New(id), true
}

// FromExtensionConforming is like FromExtension but also requires the result
// to conform to super. A zero super disables the conformance requirement.
func FromExtensionConforming(ext string, super FileType) (FileType, bool) {
	t, ok := FromExtension(ext)
	if !ok {
		return FileType{}, false
	}
	if !super.IsZero() && !t.Conforms(super) {
		return FileType{}, false
	}
	return t, true
}

// FromPath classifies path by its extension.
func FromPath(path string) (FileType, bool) {
	return FromExtension(filepath.Ext(path))
}

// IsDecodable reports whether t is accepted as pipeline input.
func IsDecodable(t FileType) bool {
	return registry[t.identifier].decodable
}

// InputTypes returns every decodable input type, sorted by identifier.
func InputTypes() []FileType {
	var types []FileType
	for id, e := range registry {
		if e.decodable {
			types = append(types, New(id))
		}
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].identifier < types[j].identifier
	})
	return types
}
