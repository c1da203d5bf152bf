// ============================================================================
// devkit - Developer Conversion Toolkit
// ============================================================================
//
// Package:     toolkit
// Description: Tool catalog metadata and lookup
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package toolkit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/msto63/devkit/foundation/utils/slicex"
)

// Category groups tools in listings
type Category string

const (
	CategoryTextProcessing Category = "text-processing"
	CategoryEncoding       Category = "encoding"
	CategoryGeneration     Category = "generation"
	CategoryConversion     Category = "conversion"
)

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{CategoryTextProcessing, CategoryEncoding, CategoryGeneration, CategoryConversion}
}

// Tool ids
const (
	ToolCase      = "case-converter"
	ToolUUID      = "uuid-generator"
	ToolBase64    = "base64-converter"
	ToolURL       = "url-encoder"
	ToolTimestamp = "timestamp"
	ToolHash      = "hash-generator"
	ToolLorem     = "lorem-generator"
	ToolBase      = "number-base-converter"
)

// Tool describes one tool of the suite
type Tool struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Command     string          `json:"command"`
	Priority    int             `json:"priority"`
	Operations  []OperationType `json:"operations"`
}

// Registry holds the tool catalog
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// DefaultRegistry returns a registry holding all built-in tools
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterAll()
	return r
}

// Register adds a tool; ids must be unique and priorities within 1-3
func (r *Registry) Register(tool Tool) error {
	if tool.ID == "" {
		return fmt.Errorf("tool id is required")
	}
	if tool.Priority < 1 || tool.Priority > 3 {
		return fmt.Errorf("tool %s: priority %d out of range [1, 3]", tool.ID, tool.Priority)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.ID]; exists {
		return fmt.Errorf("tool %s already registered", tool.ID)
	}
	r.tools[tool.ID] = tool
	r.order = append(r.order, tool.ID)
	return nil
}

// RegisterAll registers the built-in tools, ordered by priority
func (r *Registry) RegisterAll() {
	for _, tool := range builtinTools {
		// builtin ids are unique, so only a repeated call can fail
		_ = r.Register(tool)
	}
}

var builtinTools = []Tool{
	// P1 Tools
	{
		ID:          ToolCase,
		Name:        "Case Converter",
		Description: "Convert text between lowercase, UPPERCASE, Title Case, and camelCase",
		Category:    CategoryTextProcessing,
		Command:     "case",
		Priority:    1,
		Operations:  []OperationType{OperationConvert},
	},
	{
		ID:          ToolUUID,
		Name:        "UUID Generator",
		Description: "Generate standards-compliant UUIDs (v4)",
		Category:    CategoryGeneration,
		Command:     "uuid",
		Priority:    1,
		Operations:  []OperationType{OperationGenerate},
	},
	{
		ID:          ToolBase64,
		Name:        "Base64 Converter",
		Description: "Encode and decode Base64 strings",
		Category:    CategoryEncoding,
		Command:     "base64",
		Priority:    1,
		Operations:  []OperationType{OperationEncode, OperationDecode},
	},
	// P2 Tools
	{
		ID:          ToolURL,
		Name:        "URL Encoder",
		Description: "Encode and decode URL strings",
		Category:    CategoryEncoding,
		Command:     "url",
		Priority:    2,
		Operations:  []OperationType{OperationEncode, OperationDecode},
	},
	{
		ID:          ToolTimestamp,
		Name:        "Timestamp Converter",
		Description: "Convert between Unix timestamps and human-readable dates",
		Category:    CategoryConversion,
		Command:     "timestamp",
		Priority:    2,
		Operations:  []OperationType{OperationConvert},
	},
	{
		ID:          ToolHash,
		Name:        "Hash Generator",
		Description: "Generate MD5, SHA-1, SHA-256, SHA-512, SHA-3 and BLAKE2b hashes",
		Category:    CategoryGeneration,
		Command:     "hash",
		Priority:    2,
		Operations:  []OperationType{OperationGenerate},
	},
	// P3 Tools
	{
		ID:          ToolLorem,
		Name:        "Lorem Ipsum Generator",
		Description: "Generate Lorem Ipsum placeholder text",
		Category:    CategoryGeneration,
		Command:     "lorem",
		Priority:    3,
		Operations:  []OperationType{OperationGenerate},
	},
	{
		ID:          ToolBase,
		Name:        "Number Base Converter",
		Description: "Convert between binary, decimal, hexadecimal, and octal",
		Category:    CategoryConversion,
		Command:     "base",
		Priority:    3,
		Operations:  []OperationType{OperationConvert},
	},
}

// Tools returns all tools in registration order
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.order))
	for _, id := range r.order {
		tools = append(tools, r.tools[id])
	}
	return tools
}

// Get returns the tool with the given id
func (r *Registry) Get(id string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[id]
	return tool, ok
}

// ByCategory returns the tools of one category in registration order
func (r *Registry) ByCategory(category Category) []Tool {
	return r.filter(func(t Tool) bool { return t.Category == category })
}

// ByPriority returns the tools of one priority in registration order
func (r *Registry) ByPriority(priority int) []Tool {
	return r.filter(func(t Tool) bool { return t.Priority == priority })
}

// Sorted returns all tools ordered by priority, then name
func (r *Registry) Sorted() []Tool {
	tools := r.Tools()
	sort.SliceStable(tools, func(i, j int) bool {
		if tools[i].Priority != tools[j].Priority {
			return tools[i].Priority < tools[j].Priority
		}
		return tools[i].Name < tools[j].Name
	})
	return tools
}

func (r *Registry) filter(keep func(Tool) bool) []Tool {
	return slicex.Filter(r.Tools(), keep)
}
