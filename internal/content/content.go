// Package content describes what the showcase page shows: the title words,
// the case studies and the photo projects, loaded from a TOML manifest.
package content

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/senk-showcase/internal/config"
)

const (
	DefaultCaseName   = "Кейс"
	DefaultPhotoTitle = "Фото"
)

type Case struct {
	Name   string `toml:"name"`
	Desc   string `toml:"desc"`
	Tasks  string `toml:"tasks"`
	Images string `toml:"images"`
}

// Title falls back to DefaultCaseName when the manifest leaves it empty.
func (c Case) Title() string {
	if strings.TrimSpace(c.Name) == "" {
		return DefaultCaseName
	}
	return c.Name
}

func (c Case) TaskList() []string { return ParseTasks(c.Tasks) }

type Project struct {
	Title  string `toml:"title"`
	Images string `toml:"images"`
}

// PhotoTitle is the heading of the photo modal for this project.
func (p Project) PhotoTitle() string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = DefaultPhotoTitle
	}
	return DefaultPhotoTitle + " — " + title
}

type Order struct {
	Username string `toml:"username"`
}

type Page struct {
	TitleWords []string  `toml:"title_words"`
	Order      Order     `toml:"order"`
	Cases      []Case    `toml:"cases"`
	Projects   []Project `toml:"projects"`

	// Dir is where relative image paths are resolved from.
	Dir string `toml:"-"`
}

// Load reads a manifest. Relative image paths resolve against its directory.
func Load(path string) (*Page, error) {
	var p Page
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	p.Dir = filepath.Dir(path)
	p.fillDefaults()
	return &p, nil
}

func (p *Page) fillDefaults() {
	if len(p.TitleWords) == 0 {
		p.TitleWords = []string{"Senk", "Сэнк"}
	}
	if strings.TrimSpace(p.Order.Username) == "" {
		p.Order.Username = config.OrderUsername
	}
}

// Images parses a comma-separated attribute and resolves each entry.
func (p *Page) Images(attr string) []string {
	list := ParseImages(attr)
	for i, src := range list {
		list[i] = p.resolve(src)
	}
	return list
}

func (p *Page) resolve(src string) string {
	if p.Dir == "" || filepath.IsAbs(src) || strings.Contains(src, "://") {
		return src
	}
	return filepath.Join(p.Dir, src)
}

// Default is the built-in page used when no manifest is given.
func Default() *Page {
	p := &Page{
		Cases: []Case{
			{
				Name:   "Brand identity",
				Desc:   "Logo, palette and type system for a coffee roastery.",
				Tasks:  "Logo | Colour palette | Packaging mockups",
				Images: "assets/brand-1.png, assets/brand-2.png, assets/brand-3.png, assets/brand-4.png",
			},
			{
				Name:   "Landing page",
				Desc:   "One-page site for a mobile app launch.",
				Tasks:  "Wireframes|Visual design|Motion spec",
				Images: "assets/landing-1.png, assets/landing-2.png, assets/landing-3.png",
			},
			{
				Name:   "Social kit",
				Desc:   "Templates for a weekly content series.",
				Tasks:  "Stories | Covers",
				Images: "assets/social-1.png, assets/social-2.png, assets/social-3.png, assets/social-4.png",
			},
		},
		Projects: []Project{
			{Title: "Street", Images: "assets/street-1.jpg, assets/street-2.jpg, assets/street-3.jpg, assets/street-4.jpg"},
			{Title: "Portraits", Images: "assets/portrait-1.jpg, assets/portrait-2.jpg"},
		},
	}
	p.fillDefaults()
	return p
}

// ParseImages splits a comma-separated list, trims entries, drops empty
// ones and keeps at most four.
func ParseImages(attr string) []string {
	var out []string
	for _, s := range strings.Split(attr, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == config.ViewerSlides {
			break
		}
	}
	return out
}

// ParseTasks splits a "|"-separated task list.
func ParseTasks(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, "|") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// OrderMessage is the prefilled chat message for ordering a case. slide is
// 1-based.
func OrderMessage(caseName string, slide int) string {
	return fmt.Sprintf("Хочу заказать: %s\nКадр: %d/%d\nОпишите, пожалуйста, стоимость и сроки.",
		caseName, slide, config.ViewerSlides)
}

// OrderURL builds the chat deep link carrying text.
func OrderURL(username, text string) string {
	return config.OrderBaseURL + escapeComponent(username) + "?text=" + escapeComponent(text)
}

var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent matches JavaScript's encodeURIComponent.
func escapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
