package extract

import (
	"reflect"
	"testing"
)

func TestSegmentBlocks(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		datelineIdx int
		want        Blocks
	}{
		{
			name: "full partition",
			lines: []string{
				"తెలంగాణలో కొత్త పథకం",
				"రైతులకు ఊరట",
				"గ్రామాల్లో సంతోషం",
				"మంచి వర్షాలు",
				"కామారెడ్డి జిల్లా జనవరి 07:",
				"ఈ పథకం ద్వారా రైతులకు లాభం చేకూరింది.",
			},
			datelineIdx: 4,
			want: Blocks{
				Title:    "తెలంగాణలో కొత్త పథకం",
				Subtitle: "రైతులకు ఊరట",
				Bullets:  []string{"గ్రామాల్లో సంతోషం", "మంచి వర్షాలు"},
				Body:     "ఈ పథకం ద్వారా రైతులకు లాభం చేకూరింది.",
			},
		},
		{
			name:        "no date line keeps body empty",
			lines:       []string{"headline", "subtitle"},
			datelineIdx: -1,
			want: Blocks{
				Title:    "headline",
				Subtitle: "subtitle",
			},
		},
		{
			name:        "single line",
			lines:       []string{"only line"},
			datelineIdx: -1,
			want:        Blocks{Title: "only line"},
		},
		{
			name: "blank lines compacted",
			lines: []string{
				"", "headline", "", "subtitle", "",
				"Jan 7:",
				"", "para one", "", "para two",
			},
			datelineIdx: 5,
			want: Blocks{
				Title:    "headline",
				Subtitle: "subtitle",
				Body:     "para one\n\npara two",
			},
		},
		{
			name: "bullet markers stripped",
			lines: []string{
				"headline",
				"subtitle",
				"- first point",
				"• second point",
				"3. third point",
				"Jan 7:",
			},
			datelineIdx: 5,
			want: Blocks{
				Title:    "headline",
				Subtitle: "subtitle",
				Bullets:  []string{"first point", "second point", "third point"},
			},
		},
		{
			name: "bullets capped at five",
			lines: []string{
				"headline", "subtitle",
				"b1", "b2", "b3", "b4", "b5", "b6", "b7",
				"Jan 7:",
			},
			datelineIdx: 9,
			want: Blocks{
				Title:    "headline",
				Subtitle: "subtitle",
				Bullets:  []string{"b1", "b2", "b3", "b4", "b5"},
			},
		},
		{
			name: "marker-only line discarded",
			lines: []string{
				"headline", "subtitle",
				"-",
				"real point",
				"Jan 7:",
			},
			datelineIdx: 4,
			want: Blocks{
				Title:    "headline",
				Subtitle: "subtitle",
				Bullets:  []string{"real point"},
			},
		},
		{
			name:        "date line first",
			lines:       []string{"Jan 7:", "body only"},
			datelineIdx: 0,
			want:        Blocks{Body: "body only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentBlocks(tt.lines, tt.datelineIdx)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentBlocks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
