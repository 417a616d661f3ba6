package pagination

import "testing"

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: "abc", CreatedAt: "2025-06-01T12:00:00Z"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeCursor(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != "abc" || decoded.CreatedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	if _, err := DecodeCursor("not base64!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := DecodeCursor("bm90IGpzb24"); err == nil {
		t.Fatal("expected error for non-JSON payload")
	}
}

func TestBuildCursorPageInfo(t *testing.T) {
	type row struct{ id string }
	extract := func(r *row) string { return r.id }

	data := []*row{{"a"}, {"b"}, {"c"}}
	trimmed, info := BuildCursorPageInfo(data, 2, extract)
	if len(trimmed) != 2 {
		t.Fatalf("expected trimmed page of 2, got %d", len(trimmed))
	}
	if !info.HasMore || info.NextPageToken != "b" {
		t.Fatalf("expected more pages after b, got %+v", info)
	}

	trimmed, info = BuildCursorPageInfo(data[:2], 2, extract)
	if len(trimmed) != 2 || info.HasMore {
		t.Fatalf("expected exact page without more, got %d rows %+v", len(trimmed), info)
	}

	trimmed, info = BuildCursorPageInfo([]*row{}, 2, extract)
	if len(trimmed) != 0 || info.HasMore || info.NextPageToken != "" {
		t.Fatalf("expected empty page, got %d rows %+v", len(trimmed), info)
	}
}
