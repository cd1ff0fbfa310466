package inventory

import "time"

// Category das categorias de item aceitas no cadastro.
type Category string

const (
	CategoryFood        Category = "Alimentos"
	CategoryHygiene     Category = "Higiene"
	CategoryMedicine    Category = "Medicamentos"
	CategoryAccessories Category = "Acessórios"
	CategoryOther       Category = "Outros"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryHygiene, CategoryMedicine, CategoryAccessories, CategoryOther:
		return true
	default:
		return false
	}
}

// Unit de medida do estoque.
type Unit string

const (
	UnitUnit       Unit = "un"
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "mL"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitUnit, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter:
		return true
	default:
		return false
	}
}

// Item de estoque. Referencia um fornecedor; a referência não é revalidada
// depois da criação.
type Item struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          Category  `json:"category"`
	Quantity          int       `json:"quantity"`
	Unit              Unit      `json:"unit"`
	SupplierID        string    `json:"supplier_id"`
	LastPurchaseDate  time.Time `json:"last_purchase_date"`
	LowStockThreshold int       `json:"low_stock_threshold"`
}

// LowStock indica estoque baixo: quantidade menor ou igual ao limite.
func (i Item) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
