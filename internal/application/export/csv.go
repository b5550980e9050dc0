package export

import (
	"strings"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// Encabezados CSV: nombres de campo del estado persistido, en su orden.
var (
	IngredientColumns = []string{
		"id", "name", "category", "currentStock", "unit",
		"minStockLevel", "unitCost", "expiryDate", "supplierId", "lastRestocked",
	}
	SupplierColumns = []string{"id", "name", "contactPerson", "phone", "location", "paymentTerms", "balance"}
	RecipeColumns   = []string{"id", "name", "category", "price", "ingredients"}
)

// CSV une encabezado y filas con comas y saltos "\n". Sin filas devuelve "".
//
// Los valores no se entrecomillan ni se escapan: una coma dentro de un campo
// desplaza las columnas. Es el formato que consumen las planillas existentes.
func CSV(header []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(r, ","))
	}
	return b.String()
}

// IngredientsCSV exporta el inventario.
func IngredientsCSV(ings []*entity.Ingredient) string {
	rows := make([][]string, 0, len(ings))
	for _, i := range ings {
		if i == nil {
			continue
		}
		r := dto.ToLegacyIngredient(i)
		rows = append(rows, []string{
			r.ID, r.Name, r.Category, r.CurrentStock.String(), r.Unit,
			r.MinStockLevel.String(), r.UnitCost.String(), r.ExpiryDate, r.SupplierID, r.LastRestocked,
		})
	}
	return CSV(IngredientColumns, rows)
}

// SuppliersCSV exporta los proveedores.
func SuppliersCSV(sups []*entity.Supplier) string {
	rows := make([][]string, 0, len(sups))
	for _, s := range sups {
		if s == nil {
			continue
		}
		rows = append(rows, []string{
			s.ID, s.Name, s.ContactPerson, s.Phone, s.Location, s.PaymentTerms, s.Balance.String(),
		})
	}
	return CSV(SupplierColumns, rows)
}

// RecipesCSV exporta las recetas; las líneas se escriben como "id:cantidad" separadas por ";".
func RecipesCSV(items []*entity.MenuItem) string {
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		if m == nil {
			continue
		}
		lines := make([]string, 0, len(m.Ingredients))
		for _, l := range m.Ingredients {
			lines = append(lines, l.IngredientID+":"+l.Quantity.String())
		}
		rows = append(rows, []string{m.ID, m.Name, m.Category, m.Price.String(), strings.Join(lines, ";")})
	}
	return CSV(RecipeColumns, rows)
}
