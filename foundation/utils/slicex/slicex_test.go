// File: slicex_test.go
// Title: Generic Slice Helpers Tests
// Description: Tests for Filter, Map, Contains and GroupBy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package slicex

import (
	"reflect"
	"strconv"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Run("filter even numbers", func(t *testing.T) {
		result := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
		if !reflect.DeepEqual(result, []int{2, 4, 6}) {
			t.Errorf("Filter() = %v, want [2 4 6]", result)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		result := Filter([]string{"a"}, func(s string) bool { return len(s) > 2 })
		if result == nil || len(result) != 0 {
			t.Errorf("Filter() = %#v, want empty non-nil slice", result)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if Filter(nil, func(x int) bool { return x > 0 }) != nil {
			t.Error("Filter(nil) should be nil")
		}
	})
}

func TestMap(t *testing.T) {
	result := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(result, []string{"1", "2", "3"}) {
		t.Errorf("Map() = %v", result)
	}
	if Map[int, string](nil, strconv.Itoa) != nil {
		t.Error("Map(nil) should be nil")
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		slice []string
		item  string
		want  bool
	}{
		{"present", []string{"encoding", "generation"}, "encoding", true},
		{"absent", []string{"encoding"}, "games", false},
		{"nil slice", nil, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.slice, tt.item); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]string{"apple", "avocado", "banana"}, func(s string) byte { return s[0] })

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if !reflect.DeepEqual(groups['a'], []string{"apple", "avocado"}) {
		t.Errorf("group a = %v", groups['a'])
	}
	if GroupBy[string, byte](nil, func(s string) byte { return 0 }) != nil {
		t.Error("GroupBy(nil) should be nil")
	}
}
