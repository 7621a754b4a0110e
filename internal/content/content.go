// Package content holds the portfolio's static records: the profile, the
// skills list and the ordered project catalog.
//
// Records are decoded once from a YAML content file and never mutated
// afterwards. Ordering in the file is display order everywhere.
package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConflictingMedia is returned when a project sets both a video and
	// an image as its primary media.
	ErrConflictingMedia = errors.New("project sets both video and image")
	// ErrInvalidCodeLink is returned for a code link that is neither
	// "private", "none" nor an absolute URL.
	ErrInvalidCodeLink = errors.New("invalid code link")
	// ErrVideoWithoutSrc is returned for a video mapping with no src.
	ErrVideoWithoutSrc = errors.New("video needs a src")
)

// Site is one immutable snapshot of everything the page renders.
type Site struct {
	Profile  Profile   `yaml:"profile"`
	Skills   Skills    `yaml:"skills"`
	Projects []Project `yaml:"projects"`
}

// Profile is the hero section's data.
type Profile struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	// Bio is optional markdown.
	Bio    string `yaml:"bio"`
	Email  string `yaml:"email"`
	Resume string `yaml:"resume"`
	Links  Links  `yaml:"links"`
}

// Link is one labelled outbound URL.
type Link struct {
	Label string
	URL   string
}

// Links keeps the order the labels were written in.
type Links []Link

// SkillGroup is one category of the skills panel.
type SkillGroup struct {
	Category string
	Skills   []string
}

// Skills keeps the order the categories were written in.
type Skills []SkillGroup

// MediaKind tags the primary media of a project.
type MediaKind int

const (
	MediaNone MediaKind = iota
	MediaVideo
	MediaImage
)

func (k MediaKind) String() string {
	switch k {
	case MediaVideo:
		return "video"
	case MediaImage:
		return "image"
	default:
		return "none"
	}
}

// Media is a project's primary preview. Poster is only meaningful for video.
type Media struct {
	Kind   MediaKind
	Src    string
	Poster string
}

// Video builds a video media reference.
func Video(src, poster string) Media {
	return Media{Kind: MediaVideo, Src: src, Poster: poster}
}

// Image builds an image media reference.
func Image(src string) Media {
	return Media{Kind: MediaImage, Src: src}
}

// MediaPolicy decides what a card without a video or image shows.
type MediaPolicy int

const (
	// MediaOmit drops the media container entirely.
	MediaOmit MediaPolicy = iota
	// MediaPlaceholder keeps an empty framed container.
	MediaPlaceholder
)

func (p MediaPolicy) String() string {
	if p == MediaPlaceholder {
		return "placeholder"
	}
	return "omit"
}

// ParseMediaPolicy reads "omit" or "placeholder".
func ParseMediaPolicy(s string) (MediaPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "omit":
		return MediaOmit, nil
	case "placeholder":
		return MediaPlaceholder, nil
	default:
		return MediaOmit, fmt.Errorf("unknown media policy %q: must be omit or placeholder", s)
	}
}

// CodeLinkKind tags a project's code link.
type CodeLinkKind int

const (
	CodeNone CodeLinkKind = iota
	CodePrivate
	CodeURL
)

func (k CodeLinkKind) String() string {
	switch k {
	case CodePrivate:
		return "private"
	case CodeURL:
		return "url"
	default:
		return "none"
	}
}

// CodeLink is where a project's "View code" control leads. Href is set
// only for CodeURL.
type CodeLink struct {
	Kind CodeLinkKind
	Href string
}

// PrivateCode is the code link of a private repository.
func PrivateCode() CodeLink { return CodeLink{Kind: CodePrivate} }

// CodeAt is a public code link.
func CodeAt(href string) CodeLink { return CodeLink{Kind: CodeURL, Href: href} }

// Project is one card of the catalog.
type Project struct {
	Title      string
	Blurb      string
	Tech       []string
	Media      Media
	Code       CodeLink
	Live       string
	InProgress bool
}
