package pagination

import "testing"

func TestSlice(t *testing.T) {
	items := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	t.Run("defaults", func(t *testing.T) {
		resp := Slice(items, PageRequest{})

		if resp.Page != 1 || resp.PageSize != 20 {
			t.Errorf("expected defaults 1/20, got %d/%d", resp.Page, resp.PageSize)
		}
		if len(resp.Data) != 10 || resp.TotalItems != 10 || resp.TotalPages != 1 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("middle_page", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 2, PageSize: 3})

		if len(resp.Data) != 3 {
			t.Fatalf("expected 3 items, got %d", len(resp.Data))
		}
		if resp.Data[0] != 7 || resp.Data[2] != 5 {
			t.Errorf("expected items 7..5, got %v", resp.Data)
		}
		if resp.TotalPages != 4 {
			t.Errorf("expected 4 pages, got %d", resp.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 4, PageSize: 3})

		if len(resp.Data) != 1 || resp.Data[0] != 1 {
			t.Errorf("expected the final item, got %v", resp.Data)
		}
	})

	t.Run("page_past_end", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 9, PageSize: 5})

		if len(resp.Data) != 0 {
			t.Errorf("expected no items, got %v", resp.Data)
		}
		if resp.TotalItems != 10 {
			t.Errorf("expected total to still be 10, got %d", resp.TotalItems)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		resp := Slice([]int{}, PageRequest{Page: 1, PageSize: 5})

		if len(resp.Data) != 0 || resp.TotalItems != 0 || resp.TotalPages != 0 {
			t.Errorf("unexpected response for empty input: %+v", resp)
		}
	})
}
