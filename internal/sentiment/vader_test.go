package sentiment

import "testing"

func TestClassifyEmptyText(t *testing.T) {
	score, label := Classify("")
	if score != 0 {
		t.Errorf("expected score 0 for empty text, got %f", score)
	}
	if label != LabelNeutral {
		t.Errorf("expected label %q for empty text, got %q", LabelNeutral, label)
	}
}

func TestClassifyPositiveText(t *testing.T) {
	score, label := Classify("I love this, amazing!")
	if score <= 0 {
		t.Errorf("expected positive score, got %f", score)
	}
	if label != LabelPositive {
		t.Errorf("expected label %q, got %q", LabelPositive, label)
	}
}

func TestClassifyNegativeText(t *testing.T) {
	score, label := Classify("I hate this, terrible")
	if score >= 0 {
		t.Errorf("expected negative score, got %f", score)
	}
	if label != LabelNegative {
		t.Errorf("expected label %q, got %q", LabelNegative, label)
	}
}

func TestClassifyNoMatchText(t *testing.T) {
	score, label := Classify("the chair is next to the table")
	if score != 0 {
		t.Errorf("expected score 0 for no-match text, got %f", score)
	}
	if label != LabelNeutral {
		t.Errorf("expected label %q, got %q", LabelNeutral, label)
	}
}

func TestRemoveLinks(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare url", "check this https://example.com/post out", "check this  out"},
		{"www url", "see www.example.com now", "see  now"},
		{"markdown link", "read [the thread](https://example.com/t) today", "read the thread today"},
		{"no links", "nothing to strip here", "nothing to strip here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemoveLinks(tc.input); got != tc.want {
				t.Errorf("RemoveLinks(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
