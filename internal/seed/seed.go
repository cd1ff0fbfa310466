// Package seed contém o dataset inicial da clínica, usado como fallback
// quando o slot de snapshot de uma coleção ainda não existe.
package seed

import (
	"time"

	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/inventory"
	"unisovet-console/internal/domain/pets"
	"unisovet-console/internal/domain/suppliers"
)

func Clients() []clients.Client {
	return []clients.Client{
		{ID: "1", Name: "João da Silva", Email: "joao.silva@example.com", Phone: "(11) 98765-4321", Address: "Rua das Flores, 123, São Paulo, SP"},
		{ID: "2", Name: "Maria Oliveira", Email: "maria.oliveira@example.com", Phone: "(21) 91234-5678", Address: "Avenida Copacabana, 456, Rio de Janeiro, RJ"},
	}
}

func Pets() []pets.Pet {
	return []pets.Pet{
		{ID: "p1", OwnerID: "1", Name: "Rex", Species: "Cachorro", Breed: "Labrador", BirthDate: date(2020, 5, 10)},
		{ID: "p2", OwnerID: "1", Name: "Mimi", Species: "Gato", Breed: "Siamês", BirthDate: date(2021, 1, 15)},
		{ID: "p3", OwnerID: "2", Name: "Pingo", Species: "Cachorro", Breed: "Poodle", BirthDate: date(2019, 11, 20)},
	}
}

// Appointments gera os agendamentos de exemplo relativos a now:
// um agendado daqui a dois dias e um concluído cinco dias atrás.
func Appointments(now time.Time) []appointments.Appointment {
	return []appointments.Appointment{
		{ID: "a1", ClientID: "1", PetID: "p1", Date: now.AddDate(0, 0, 2), Reason: "Vacina anual", Status: appointments.StatusScheduled},
		{ID: "a2", ClientID: "2", PetID: "p3", Date: now.AddDate(0, 0, -5), Reason: "Check-up de rotina", Status: appointments.StatusCompleted},
	}
}

func Suppliers() []suppliers.Supplier {
	return []suppliers.Supplier{
		{ID: "s1", Name: "PetFood Inc.", ContactPerson: "Carlos Mendes", Phone: "(11) 5555-1234", Email: "vendas@petfoodinc.com"},
		{ID: "s2", Name: "CleanPet", ContactPerson: "Ana Costa", Phone: "(21) 5555-5678", Email: "contato@cleanpet.com"},
	}
}

func Inventory() []inventory.Item {
	return []inventory.Item{
		{ID: "i1", Name: "Ração Seca para Cães Adultos", Category: inventory.CategoryFood, Quantity: 4, Unit: inventory.UnitKilogram, SupplierID: "s1", LastPurchaseDate: *date(2024, 5, 10), LowStockThreshold: 5},
		{ID: "i2", Name: "Shampoo Hipoalergênico", Category: inventory.CategoryHygiene, Quantity: 2, Unit: inventory.UnitUnit, SupplierID: "s2", LastPurchaseDate: *date(2024, 5, 20), LowStockThreshold: 3},
		{ID: "i3", Name: "Ração Úmida para Gatos", Category: inventory.CategoryFood, Quantity: 48, Unit: inventory.UnitUnit, SupplierID: "s1", LastPurchaseDate: *date(2024, 6, 1), LowStockThreshold: 12},
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
