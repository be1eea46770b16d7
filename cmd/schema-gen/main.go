// Schema Generator
//
// Generates JSON Schema files from the Go API types. Go is the source of
// truth for the comparator API shapes; the schemas feed client codegen.
//
// Usage:
//
//	go run cmd/schema-gen/main.go
//
// Output:
//
//	./schemas/products.json
//	./schemas/basket.json
//	./schemas/discounts.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/pricepulse/comparator-service/internal/handlers"
)

// SchemaGroup represents a group of related schemas
type SchemaGroup struct {
	Name   string
	Types  []any
	Output string
}

func main() {
	outputDir := "./schemas"

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	groups := []SchemaGroup{
		{
			Name: "products",
			Types: []any{
				handlers.Product{},
				handlers.PricedProduct{},
				handlers.BrandProduct{},
				handlers.ComparisonResponse{},
				handlers.CheapestResponse{},
				handlers.HistoryEntryResponse{},
				handlers.TrendPointResponse{},
			},
			Output: "products.json",
		},
		{
			Name: "basket",
			Types: []any{
				// Request types
				handlers.BasketRequest{},
				handlers.BudgetRequest{},
				handlers.CompareDatesRequest{},
				// Response types
				handlers.BasketLineResponse{},
				handlers.SubstitutionResponse{},
				handlers.OptimizeResponse{},
				handlers.InvoiceLineResponse{},
				handlers.InvoiceResponse{},
				handlers.BudgetResponse{},
				handlers.DateTotalResponse{},
			},
			Output: "basket.json",
		},
		{
			Name: "discounts",
			Types: []any{
				handlers.Discount{},
				handlers.CreateAlertRequest{},
				handlers.ReloadResponse{},
				handlers.HealthResponse{},
			},
			Output: "discounts.json",
		},
	}

	for _, group := range groups {
		schema := generateGroupSchema(group)
		outputPath := filepath.Join(outputDir, group.Output)

		if err := writeSchema(schema, outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", group.Output, err)
			os.Exit(1)
		}

		fmt.Printf("Generated %s\n", outputPath)
	}

	fmt.Println("Schema generation complete!")
}

// generateGroupSchema creates a combined schema with all types in a group
func generateGroupSchema(group SchemaGroup) map[string]any {
	reflector := &jsonschema.Reflector{
		DoNotReference: false,
		ExpandedStruct: false,
	}

	definitions := make(map[string]any)

	for _, t := range group.Types {
		schema := reflector.Reflect(t)

		typeName := ""
		if schema.Ref != "" {
			// Extract type name from $ref like "#/$defs/BasketRequest"
			typeName = filepath.Base(schema.Ref)
		}

		for name, def := range schema.Definitions {
			definitions[name] = def
		}

		if typeName != "" && schema.Definitions[typeName] != nil {
			definitions[typeName] = schema.Definitions[typeName]
		}
	}

	return map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         fmt.Sprintf("https://pricepulse.dev/schemas/%s.json", group.Name),
		"title":       fmt.Sprintf("%s API Types", capitalize(group.Name)),
		"description": fmt.Sprintf("JSON Schema for %s API types generated from Go structs", group.Name),
		"$defs":       definitions,
	}
}

// writeSchema writes a schema to a JSON file
func writeSchema(schema map[string]any, path string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
