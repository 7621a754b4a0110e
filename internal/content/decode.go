package content

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// eachPair walks a YAML mapping in document order.
func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
		if err := fn(key, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalYAML decodes a label -> URL mapping keeping its order.
func (l *Links) UnmarshalYAML(node *yaml.Node) error {
	var links Links
	err := eachPair(node, func(label string, value *yaml.Node) error {
		var href string
		if err := value.Decode(&href); err != nil {
			return fmt.Errorf("link %q: %w", label, err)
		}
		links = append(links, Link{Label: label, URL: href})
		return nil
	})
	if err != nil {
		return err
	}
	*l = links
	return nil
}

// UnmarshalYAML decodes a category -> skills mapping keeping its order.
func (s *Skills) UnmarshalYAML(node *yaml.Node) error {
	var groups Skills
	err := eachPair(node, func(category string, value *yaml.Node) error {
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("skills %q: %w", category, err)
		}
		groups = append(groups, SkillGroup{Category: category, Skills: names})
		return nil
	})
	if err != nil {
		return err
	}
	*s = groups
	return nil
}

// ParseCodeLink reads the content-file spelling of a code link: "private",
// "none" (or empty), or an absolute http(s) URL.
func ParseCodeLink(raw string) (CodeLink, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "none":
		return CodeLink{}, nil
	case "private":
		return PrivateCode(), nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return CodeLink{}, fmt.Errorf("%w %q: want private, none or an absolute URL", ErrInvalidCodeLink, raw)
	}
	return CodeAt(raw), nil
}

func (c *CodeLink) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	link, err := ParseCodeLink(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = link
	return nil
}

// checkKeys rejects mapping keys outside allowed. Custom unmarshalers
// decode through yaml.Node, which does not inherit the decoder's
// KnownFields setting.
func checkKeys(node *yaml.Node, what string, allowed ...string) error {
	return eachPair(node, func(key string, value *yaml.Node) error {
		for _, a := range allowed {
			if key == a {
				return nil
			}
		}
		return fmt.Errorf("line %d: field %s not found in %s", value.Line, key, what)
	})
}

type videoDoc struct {
	Src    string `yaml:"src"`
	Poster string `yaml:"poster"`
}

func (v *videoDoc) UnmarshalYAML(node *yaml.Node) error {
	if err := checkKeys(node, "video", "src", "poster"); err != nil {
		return err
	}
	type plain videoDoc
	return node.Decode((*plain)(v))
}

type projectDoc struct {
	Title      string    `yaml:"title"`
	Blurb      string    `yaml:"blurb"`
	Tech       []string  `yaml:"tech"`
	Video      *videoDoc `yaml:"video"`
	Image      string    `yaml:"image"`
	Code       CodeLink  `yaml:"code"`
	Live       string    `yaml:"live"`
	InProgress bool      `yaml:"in_progress"`
}

func (p *Project) UnmarshalYAML(node *yaml.Node) error {
	err := checkKeys(node, "project",
		"title", "blurb", "tech", "video", "image", "code", "live", "in_progress")
	if err != nil {
		return err
	}

	var doc projectDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}

	var media Media
	hasVideo := doc.Video != nil
	switch {
	case hasVideo && doc.Video.Src == "":
		return fmt.Errorf("project %q: %w", doc.Title, ErrVideoWithoutSrc)
	case hasVideo && doc.Image != "":
		return fmt.Errorf("project %q: %w", doc.Title, ErrConflictingMedia)
	case hasVideo:
		media = Video(doc.Video.Src, doc.Video.Poster)
	case doc.Image != "":
		media = Image(doc.Image)
	}

	*p = Project{
		Title:      doc.Title,
		Blurb:      doc.Blurb,
		Tech:       doc.Tech,
		Media:      media,
		Code:       doc.Code,
		Live:       doc.Live,
		InProgress: doc.InProgress,
	}
	return nil
}
