package extract

import (
	"reflect"
	"strings"
	"testing"

	"dateline/internal/model"
)

func TestExtract_TeluguArticle(t *testing.T) {
	raw := strings.Join([]string{
		"తెలంగాణలో కొత్త పథకం",
		"రైతులకు ఊరట",
		"గ్రామాల్లో సంతోషం",
		"మంచి వర్షాలు",
		"కామారెడ్డి జిల్లా జనవరి 07:",
		"ఈ పథకం ద్వారా రైతులకు లాభం చేకూరింది.",
	}, "\n")

	got := NewDraftExtractor(model.Tenant{}).Extract(raw)

	want := &model.Draft{
		Title:      "తెలంగాణలో కొత్త పథకం",
		Subtitle:   "రైతులకు ఊరట",
		Bullets:    []string{"గ్రామాల్లో సంతోషం", "మంచి వర్షాలు"},
		Body:       "ఈ పథకం ద్వారా రైతులకు లాభం చేకూరింది.",
		PlaceQuery: "కామారెడ్డి",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtract_SingleLine(t *testing.T) {
	got := NewDraftExtractor(model.Tenant{}).Extract("ఒకే వాక్యం")

	if got.Title != "ఒకే వాక్యం" {
		t.Errorf("Title = %q, want %q", got.Title, "ఒకే వాక్యం")
	}
	if got.Body != "ఒకే వాక్యం" {
		t.Errorf("Body = %q, want %q", got.Body, "ఒకే వాక్యం")
	}
	if got.PlaceQuery != "" {
		t.Errorf("PlaceQuery = %q, want empty", got.PlaceQuery)
	}
}

func TestExtract_StarWrappedTitle(t *testing.T) {
	raw := "**తెలంగాణలో కొత్త పథకం**\nసబ్ టైటిల్\nకామారెడ్డి జిల్లా జనవరి 07:\nబాడీ టెక్స్ట్."

	got := NewDraftExtractor(model.Tenant{}).Extract(raw)

	if got.Title != "తెలంగాణలో కొత్త పథకం" {
		t.Errorf("Title = %q, want stars stripped", got.Title)
	}
}

func TestExtract_CRLFInput(t *testing.T) {
	raw := "headline\r\nsubtitle\r\nJan 7:\r\nbody text"

	got := NewDraftExtractor(model.Tenant{}).Extract(raw)

	if got.Title != "headline" || got.Subtitle != "subtitle" || got.Body != "body text" {
		t.Errorf("Extract() = %+v, CRLF not normalized", got)
	}
}

func TestExtract_HTMLPaste(t *testing.T) {
	raw := "<html><body><p>headline</p><p>subtitle</p><p>Jan 7:</p><p>body text</p></body></html>"

	got := NewDraftExtractor(model.Tenant{}).Extract(raw)

	if got.Title != "headline" {
		t.Errorf("Title = %q, want %q", got.Title, "headline")
	}
	if got.Body != "body text" {
		t.Errorf("Body = %q, want %q", got.Body, "body text")
	}
}

func TestExtract_BodyNeverEmpty(t *testing.T) {
	inputs := []string{
		"ఒకే వాక్యం",
		"title\nsubtitle",
		"title\nsubtitle\nbullet one",
		"a\nb\nc\nJan 7:",
	}
	ex := NewDraftExtractor(model.Tenant{})

	for _, raw := range inputs {
		if got := ex.Extract(raw); got.Body == "" {
			t.Errorf("Extract(%q).Body is empty, want fallback to input", raw)
		}
	}
}

func TestExtract_BulletsBounded(t *testing.T) {
	lines := []string{"title", "subtitle"}
	for i := 0; i < 12; i++ {
		lines = append(lines, "- point")
	}
	lines = append(lines, "Jan 7:", "body")

	got := NewDraftExtractor(model.Tenant{}).Extract(strings.Join(lines, "\n"))

	if len(got.Bullets) > model.MaxBullets {
		t.Errorf("len(Bullets) = %d, want <= %d", len(got.Bullets), model.MaxBullets)
	}
}

// Feeding a rendered draft's lines back through extraction keeps the
// title and body stable.
func TestExtract_StableOnReparse(t *testing.T) {
	raw := "headline\nsubtitle\nJan 7:\nbody text"
	ex := NewDraftExtractor(model.Tenant{})

	first := ex.Extract(raw)
	second := ex.Extract(first.Title + "\nsubtitle\nJan 7:\n" + first.Body)

	if second.Title != first.Title {
		t.Errorf("Title changed on reparse: %q vs %q", second.Title, first.Title)
	}
	if second.Body != first.Body {
		t.Errorf("Body changed on reparse: %q vs %q", second.Body, first.Body)
	}
}
