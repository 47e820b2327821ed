package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/pin/internal/model"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple word", in: "Nature", want: "nature"},
		{name: "whitespace to hyphen", in: "Street Art", want: "street-art"},
		{name: "punctuation collapses", in: "Cats & Dogs!", want: "cats-dogs"},
		{name: "leading and trailing junk", in: "  --Retro--  ", want: "retro"},
		{name: "digits kept", in: "Top 10", want: "top-10"},
		{name: "empty", in: "", want: ""},
		{name: "only punctuation", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeLibrary_Envelope(t *testing.T) {
	blob := `{"version":1,"topics":[{"id":"t1","name":"Nature","slug":"nature","createdAt":1}],"images":[{"id":"r1","url":"https://a.com/x.jpg","createdAt":10}]}`

	lib, migrated, err := model.DecodeLibrary([]byte(blob))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if migrated {
		t.Error("current envelope should not report migration")
	}
	if len(lib.Topics) != 1 || lib.Topics[0].Slug != "nature" {
		t.Errorf("unexpected topics: %+v", lib.Topics)
	}
	if len(lib.Images) != 1 || lib.Images[0].ID != "r1" {
		t.Errorf("unexpected images: %+v", lib.Images)
	}
}

func TestDecodeLibrary_LegacyFlatArray(t *testing.T) {
	blob := `[{"id":"r1","url":"https://a.com/x.jpg","createdAt":10},{"id":"r2","url":"https://b.com/y.png","createdAt":20}]`

	lib, migrated, err := model.DecodeLibrary([]byte(blob))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !migrated {
		t.Error("flat array should report migration")
	}
	if lib.Version != model.CurrentLibraryVersion {
		t.Errorf("version = %d, want %d", lib.Version, model.CurrentLibraryVersion)
	}
	if len(lib.Images) != 2 {
		t.Fatalf("expected 2 records, got %d", len(lib.Images))
	}
	if lib.Topics == nil {
		t.Error("topics should be initialized")
	}
}

func TestDecodeLibrary_LegacyCategoryFold(t *testing.T) {
	blob := `[{"id":"r1","url":"https://a.com/x.jpg","category":"cats","createdAt":10}]`

	lib, migrated, err := model.DecodeLibrary([]byte(blob))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !migrated {
		t.Error("legacy category should report migration")
	}

	r := lib.Images[0]
	if !r.HasCategory("cats") {
		t.Errorf("legacy category not folded into categories: %+v", r.Categories)
	}
	if r.LegacyCategory != "" {
		t.Errorf("legacy field should be cleared, got %q", r.LegacyCategory)
	}
}

func TestDecodeLibrary_Invalid(t *testing.T) {
	if _, _, err := model.DecodeLibrary([]byte("not json")); err == nil {
		t.Error("expected error for invalid blob")
	}
}

func TestRecord_IsVideo(t *testing.T) {
	tests := []struct {
		name   string
		record model.Record
		want   bool
	}{
		{name: "media type video", record: model.Record{MediaType: model.MediaVideo}, want: true},
		{name: "video mime", record: model.Record{MimeType: "video/mp4"}, want: true},
		{name: "video data url", record: model.Record{URL: "data:video/webm;base64,AAAA"}, want: true},
		{name: "plain image", record: model.Record{URL: "https://a.com/x.jpg", MediaType: model.MediaImage}, want: false},
		{name: "nothing known", record: model.Record{URL: "https://a.com/x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.IsVideo(); got != tt.want {
				t.Errorf("IsVideo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	record := model.Record{
		ID:           "r1",
		URL:          "https://a.com/x.jpg",
		MimeType:     "image/jpeg",
		MediaType:    model.MediaImage,
		Title:        "A cat",
		SourceURL:    "https://a.com/page",
		Categories:   []string{"cats", "pets"},
		Topics:       []string{"nature"},
		CreatedAt:    1700000000000,
		SearchTokens: []string{"a", "cat"},
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var got model.Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.ID != record.ID || got.URL != record.URL || got.CreatedAt != record.CreatedAt {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if len(got.Categories) != 2 {
		t.Errorf("categories lost: %+v", got.Categories)
	}
}

func TestNewRecord(t *testing.T) {
	r1 := model.NewRecord(model.NewRecordParams{URL: "https://a.com/x.jpg"})
	r2 := model.NewRecord(model.NewRecordParams{URL: "https://a.com/x.jpg"})

	if r1.ID == "" || r2.ID == "" {
		t.Fatal("ids must be generated")
	}
	if r1.ID == r2.ID {
		t.Error("ids must be unique")
	}
	if r1.CreatedAt == 0 {
		t.Error("createdAt must be set")
	}

	r3 := model.NewRecord(model.NewRecordParams{URL: "https://a.com/x.jpg", CreatedAt: 42})
	if r3.CreatedAt != 42 {
		t.Errorf("explicit createdAt ignored: got %d", r3.CreatedAt)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		validImg  bool
		httpURL   bool
		mediaType string
	}{
		{name: "jpg", url: "https://a.com/x.jpg", validImg: true, httpURL: true, mediaType: model.MediaImage},
		{name: "uppercase path ext", url: "https://a.com/X.PNG", validImg: true, httpURL: true, mediaType: model.MediaImage},
		{name: "no extension", url: "https://a.com/x", validImg: false, httpURL: true, mediaType: ""},
		{name: "video extension", url: "https://a.com/clip.mp4", validImg: false, httpURL: true, mediaType: model.MediaVideo},
		{name: "ftp scheme", url: "ftp://a.com/x.jpg", validImg: false, httpURL: false, mediaType: ""},
		{name: "data image url", url: "data:image/png;base64,AAAA", validImg: false, httpURL: false, mediaType: model.MediaImage},
		{name: "garbage", url: "://nope", validImg: false, httpURL: false, mediaType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.IsValidImageURL(tt.url); got != tt.validImg {
				t.Errorf("IsValidImageURL = %v, want %v", got, tt.validImg)
			}
			if got := model.IsHTTPURL(tt.url); got != tt.httpURL {
				t.Errorf("IsHTTPURL = %v, want %v", got, tt.httpURL)
			}
			if got := model.InferMediaType(tt.url, ""); got != tt.mediaType {
				t.Errorf("InferMediaType = %q, want %q", got, tt.mediaType)
			}
		})
	}

	if got := model.InferMediaType("https://a.com/clip", "video/mp4"); got != model.MediaVideo {
		t.Errorf("InferMediaType with video mime = %q, want video", got)
	}
}
