package content

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseImages(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"a.png", []string{"a.png"}},
		{" a.png ,b.png,, c.png ", []string{"a.png", "b.png", "c.png"}},
		{"1,2,3,4,5,6", []string{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		if got := ParseImages(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseImages(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTasks(t *testing.T) {
	got := ParseTasks(" Logo | | Palette|Mockups ")
	want := []string{"Logo", "Palette", "Mockups"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseTasks = %q, want %q", got, want)
	}
}

func TestOrderURL(t *testing.T) {
	msg := OrderMessage("Brand (v2)", 3)
	wantMsg := "Хочу заказать: Brand (v2)\nКадр: 3/4\nОпишите, пожалуйста, стоимость и сроки."
	if msg != wantMsg {
		t.Fatalf("OrderMessage = %q", msg)
	}

	got := OrderURL("SanyaDur", "a b+c (d)!")
	want := "https://t.me/SanyaDur?text=a%20b%2Bc%20(d)!"
	if got != want {
		t.Fatalf("OrderURL = %q, want %q", got, want)
	}
}

func TestTitles(t *testing.T) {
	if got := (Case{}).Title(); got != DefaultCaseName {
		t.Errorf("empty case title = %q", got)
	}
	if got := (Project{Title: "Street"}).PhotoTitle(); got != "Фото — Street" {
		t.Errorf("PhotoTitle = %q", got)
	}
	if got := (Project{}).PhotoTitle(); got != "Фото — Фото" {
		t.Errorf("empty PhotoTitle = %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.toml")
	manifest := `
title_words = ["A", "B"]

[[cases]]
name = "One"
desc = "First"
tasks = "x|y"
images = "one.png, /abs/two.png, https://cdn/three.png"

[[projects]]
title = "Walk"
images = "w1.jpg"
`
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(p.TitleWords, []string{"A", "B"}) {
		t.Errorf("TitleWords = %q", p.TitleWords)
	}
	if p.Order.Username == "" {
		t.Error("order username should default")
	}
	imgs := p.Images(p.Cases[0].Images)
	want := []string{filepath.Join(dir, "one.png"), "/abs/two.png", "https://cdn/three.png"}
	if !reflect.DeepEqual(imgs, want) {
		t.Errorf("Images = %q, want %q", imgs, want)
	}
	if len(p.Projects) != 1 || p.Projects[0].Title != "Walk" {
		t.Errorf("Projects = %+v", p.Projects)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if len(p.Cases) == 0 || len(p.Projects) == 0 || len(p.TitleWords) != 2 {
		t.Fatalf("default page incomplete: %+v", p)
	}
}
