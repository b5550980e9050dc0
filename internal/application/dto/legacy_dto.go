package dto

import "github.com/jhoicas/restaurant-ops/internal/domain/entity"

// Claves del estado persistido (mismo esquema que el almacén clave-valor del tablero web).
const (
	KeyInventory = "p_inventory"
	KeySuppliers = "p_suppliers"
	KeyRecipes   = "p_recipes"
	KeyWastage   = "p_wastage"
)

// LegacyIngredient registro de ingrediente con los nombres de campo del estado persistido.
// El orden de los campos es el orden de columnas del CSV de inventario.
type LegacyIngredient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CurrentStock  Number `json:"currentStock"`
	Unit          string `json:"unit"`
	MinStockLevel Number `json:"minStockLevel"`
	UnitCost      Number `json:"unitCost"`
	ExpiryDate    string `json:"expiryDate"`
	SupplierID    string `json:"supplierId"`
	LastRestocked string `json:"lastRestocked"`
}

// LegacySupplier registro de proveedor del estado persistido.
type LegacySupplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
	PaymentTerms  string `json:"paymentTerms"`
	Balance       Number `json:"balance"`
}

// LegacyRecipeLine vínculo receta-ingrediente del estado persistido.
type LegacyRecipeLine struct {
	IngredientID string `json:"ingredientId"`
	Quantity     Number `json:"quantity"`
}

// LegacyMenuItem receta del estado persistido.
type LegacyMenuItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Price       Number             `json:"price"`
	Ingredients []LegacyRecipeLine `json:"ingredients"`
}

// LegacyWastageLog merma del estado persistido.
type LegacyWastageLog struct {
	ID           string `json:"id"`
	IngredientID string `json:"ingredientId"`
	Quantity     Number `json:"quantity"`
	Reason       string `json:"reason"`
	Date         string `json:"date"`
	LoggedBy     string `json:"loggedBy"`
}

// StateDocument las tres colecciones bajo sus claves persistidas.
type StateDocument struct {
	Inventory []LegacyIngredient `json:"p_inventory"`
	Suppliers []LegacySupplier   `json:"p_suppliers"`
	Recipes   []LegacyMenuItem   `json:"p_recipes"`
}

// ── Conversión entidad ↔ registro ────────────────────────────────────────────

// ToLegacyIngredient convierte la entidad al registro persistido.
func ToLegacyIngredient(i *entity.Ingredient) LegacyIngredient {
	return LegacyIngredient{
		ID:            i.ID,
		Name:          i.Name,
		Category:      i.Category,
		CurrentStock:  NewNumber(i.CurrentStock),
		Unit:          i.Unit,
		MinStockLevel: NewNumber(i.MinStockLevel),
		UnitCost:      NewNumber(i.UnitCost),
		ExpiryDate:    FormatDate(i.ExpiryDate),
		SupplierID:    i.SupplierID,
		LastRestocked: FormatDate(i.LastRestocked),
	}
}

// ToEntity convierte el registro; fechas inválidas quedan en zero time.
func (r LegacyIngredient) ToEntity() *entity.Ingredient {
	return &entity.Ingredient{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		CurrentStock:  r.CurrentStock.Decimal,
		Unit:          r.Unit,
		MinStockLevel: r.MinStockLevel.Decimal,
		UnitCost:      r.UnitCost.Decimal,
		ExpiryDate:    ParseDateOrZero(r.ExpiryDate),
		SupplierID:    r.SupplierID,
		LastRestocked: ParseDateOrZero(r.LastRestocked),
	}
}

// ToLegacySupplier convierte la entidad al registro persistido.
func ToLegacySupplier(s *entity.Supplier) LegacySupplier {
	return LegacySupplier{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Location:      s.Location,
		PaymentTerms:  s.PaymentTerms,
		Balance:       NewNumber(s.Balance),
	}
}

// ToEntity convierte el registro.
func (r LegacySupplier) ToEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:            r.ID,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Location:      r.Location,
		PaymentTerms:  r.PaymentTerms,
		Balance:       r.Balance.Decimal,
	}
}

// ToLegacyMenuItem convierte la entidad al registro persistido.
func ToLegacyMenuItem(m *entity.MenuItem) LegacyMenuItem {
	lines := make([]LegacyRecipeLine, 0, len(m.Ingredients))
	for _, l := range m.Ingredients {
		lines = append(lines, LegacyRecipeLine{IngredientID: l.IngredientID, Quantity: NewNumber(l.Quantity)})
	}
	return LegacyMenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       NewNumber(m.Price),
		Ingredients: lines,
	}
}

// ToEntity convierte el registro y descarta las líneas con cantidad cero.
func (r LegacyMenuItem) ToEntity() *entity.MenuItem {
	m := &entity.MenuItem{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price.Decimal,
		Ingredients: make([]entity.RecipeLine, 0, len(r.Ingredients)),
	}
	for _, l := range r.Ingredients {
		m.Ingredients = append(m.Ingredients, entity.RecipeLine{IngredientID: l.IngredientID, Quantity: l.Quantity.Decimal})
	}
	m.NormalizeLines()
	return m
}

// ToLegacyWastageLog convierte la entidad al registro persistido.
func ToLegacyWastageLog(w *entity.WastageLog) LegacyWastageLog {
	return LegacyWastageLog{
		ID:           w.ID,
		IngredientID: w.IngredientID,
		Quantity:     NewNumber(w.Quantity),
		Reason:       w.Reason,
		Date:         FormatDate(w.Date),
		LoggedBy:     w.LoggedBy,
	}
}

// ToEntity convierte el registro.
func (r LegacyWastageLog) ToEntity() *entity.WastageLog {
	return &entity.WastageLog{
		ID:           r.ID,
		IngredientID: r.IngredientID,
		Quantity:     r.Quantity.Decimal,
		Reason:       r.Reason,
		Date:         ParseDateOrZero(r.Date),
		LoggedBy:     r.LoggedBy,
	}
}
