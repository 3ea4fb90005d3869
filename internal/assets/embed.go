// Package assets inlines image and video files as base64 data URIs so the
// rendered document has no external file dependencies.
package assets

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

// Media types used by the avatar; logos and skill images are detected by content.
const (
	MediaJPEG = "image/jpeg"
	MediaMP4  = "video/mp4"
)

// fillStyle sizes an element to cover its container with no intrinsic border radius
const fillStyle = "width:100%;height:100%;object-fit:cover;display:block;border-radius:0;"

const initialsBadgeStyle = "width:170px;height:170px;background:#3b82f6;border-radius:8px;" +
	"display:flex;align-items:center;justify-content:center;font-size:32px;color:white;"

// attrEscaper escapes quoted attribute values and breaks up "{{" placeholder openers
var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "'", "&#39;", "<", "&lt;", ">", "&gt;", "\"", "&#34;", "{{", "&#123;&#123;",
)

const unknownImageStyle = "background:#e0e7ef;color:#6b7280;font-size:24px;" +
	"width:100%;height:100%;display:flex;align-items:center;justify-content:center;"

// Embedder resolves asset filenames against a fixed root directory.
// A missing or unreadable asset is never an error; callers get ok == false
// and choose their own fallback markup.
type Embedder struct {
	root string
}

// NewEmbedder creates an Embedder rooted at dir
func NewEmbedder(dir string) *Embedder {
	return &Embedder{root: dir}
}

// Read returns the bytes of the named asset. Names must stay inside the root;
// absolute paths, ".." traversal, directories and missing files report false.
func (e *Embedder) Read(name string) ([]byte, bool) {
	if name == "" || !filepath.IsLocal(name) {
		return nil, false
	}

	path := filepath.Join(e.root, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// DataURI returns the named asset as a base64 data URI. An empty mediaType
// is detected from the content.
func (e *Embedder) DataURI(name, mediaType string) (string, bool) {
	data, ok := e.Read(name)
	if !ok {
		return "", false
	}
	return EncodeDataURI(data, mediaType), true
}

// EncodeDataURI encodes data as a base64 data URI
func EncodeDataURI(data []byte, mediaType string) string {
	if mediaType == "" {
		mediaType = DetectMediaType(data)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DetectMediaType sniffs the media type of data, dropping any parameters
func DetectMediaType(data []byte) string {
	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return strings.TrimSpace(mediaType)
}

// ImageOptions controls the attributes of an embedded <img> tag
type ImageOptions struct {
	MediaType string
	Alt       string
	Class     string
	Fill      bool
}

// Image returns an <img> tag with the asset inlined, or false when the asset is absent
func (e *Embedder) Image(name string, opts ImageOptions) (string, bool) {
	uri, ok := e.DataURI(name, opts.MediaType)
	if !ok {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("<img")
	if opts.Class != "" {
		fmt.Fprintf(&sb, " class='%s'", attrEscaper.Replace(opts.Class))
	}
	fmt.Fprintf(&sb, " src='%s' alt='%s'", uri, attrEscaper.Replace(opts.Alt))
	if opts.Fill {
		fmt.Fprintf(&sb, " style='%s'", fillStyle)
	}
	sb.WriteString(" />")
	return sb.String(), true
}

// Video returns an autoplaying, muted, looping <video> tag with the asset inlined
func (e *Embedder) Video(name, mediaType string) (string, bool) {
	if mediaType == "" {
		mediaType = MediaMP4
	}
	uri, ok := e.DataURI(name, mediaType)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("<video autoplay muted loop playsinline style='%s'>"+
		"<source src='%s' type='%s' /></video>", fillStyle, uri, mediaType), true
}

// AvatarSpec describes the profile picture candidates
type AvatarSpec struct {
	Image    string
	Video    string
	UseVideo bool
	Name     string
}

// Avatar returns the profile markup in priority order: the video when
// requested and present, then the image, then an initials badge.
func (e *Embedder) Avatar(spec AvatarSpec) string {
	if spec.UseVideo {
		if tag, ok := e.Video(spec.Video, MediaMP4); ok {
			return tag
		}
	}

	if tag, ok := e.Image(spec.Image, ImageOptions{MediaType: MediaJPEG, Alt: "Profile", Fill: true}); ok {
		return tag
	}

	return InitialsBadge(spec.Name)
}

// InitialsBadge returns the colored badge used when no avatar asset exists
func InitialsBadge(name string) string {
	return fmt.Sprintf("<div class='avatar-initials' style='%s'>%s</div>",
		initialsBadgeStyle, attrEscaper.Replace(Initials(name)))
}

// SkillImage returns the image for a skill circle, or the generic "?" box
func (e *Embedder) SkillImage(name, alt string) string {
	if tag, ok := e.Image(name, ImageOptions{Alt: alt}); ok {
		return tag
	}
	return UnknownImage()
}

// UnknownImage is the placeholder box for a missing skill image
func UnknownImage() string {
	return fmt.Sprintf("<div style='%s'>?</div>", unknownImageStyle)
}

// Initials returns the upper-cased first letters of the first and last
// words of name, or "?" when name has no words.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}

	initials := []rune{firstLetter(words[0])}
	if len(words) > 1 {
		initials = append(initials, firstLetter(words[len(words)-1]))
	}
	return string(initials)
}

func firstLetter(word string) rune {
	for _, r := range word {
		return unicode.ToUpper(r)
	}
	return '?'
}
