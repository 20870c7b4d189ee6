package contracts

import (
	"strings"
	"testing"
	"time"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/alquigo/alquigo-backend/pkg/types"
	"github.com/shopspring/decimal"
)

func sampleContractData() ContractData {
	phone := "+57 301 1234567"
	return ContractData{
		Reference:     "CTR-1788091200000-ABC123XYZ",
		GeneratedAt:   time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		CustomerName:  "María Gómez",
		CustomerEmail: "maria@example.com",
		CustomerPhone: &phone,
		Address:       "Calle 80 #12-34, Bogotá",
		Items: types.TransactionItems{
			{
				ProductID:   "1",
				ProductName: "Laptop Profesional MacBook Pro",
				SellerName:  "TechnoStore Colombia",
				Condition:   enums.ProductConditionExcellent,
				Location:    "Bogotá, Cundinamarca",
				Mode:        enums.CartModeSale,
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(11500000),
				LineTotal:   decimal.NewFromInt(11500000),
			},
			{
				ProductID:      "15",
				ProductName:    "Guitarra Acústica Taylor",
				SellerName:     "MusicStore Colombia",
				Condition:      enums.ProductConditionExcellent,
				Location:       "Armenia, Quindío",
				Mode:           enums.CartModeRental,
				Quantity:       1,
				UnitPrice:      decimal.NewFromInt(4200000),
				RentalDuration: 2,
				RentalUnit:     enums.DurationUnitWeeks,
				RentalRate:     decimal.NewFromInt(2520000),
				RentalTotal:    decimal.NewFromInt(5040000),
				LineTotal:      decimal.NewFromInt(5040000),
			},
		},
		Total:    decimal.NewFromInt(18194000),
		Currency: enums.CurrencyCOP,
	}
}

func TestGenerateContainsAllSections(t *testing.T) {
	content := Generate(sampleContractData())

	for _, expected := range []string{
		"CONTRATO DE COMPRA/ALQUILER - AlquiGo",
		"Contrato No: CTR-1788091200000-ABC123XYZ",
		"DATOS DEL CLIENTE:",
		"Nombre: María Gómez",
		"Teléfono: +57 301 1234567",
		"Dirección: Calle 80 #12-34, Bogotá",
		"--- COMPRAS ---",
		"• Laptop Profesional MacBook Pro",
		"Vendedor: TechnoStore Colombia",
		"Precio unitario: $11500000.00",
		"--- ALQUILERES ---",
		"• Guitarra Acústica Taylor",
		"Arrendador: MusicStore Colombia",
		"Duración: 2 semanas",
		"Precio por semana: $2520000.00",
		"CONDICIONES DE ALQUILER:",
		"RESUMEN FINANCIERO:",
		"Total a pagar: $18194000.00 COP",
		"TÉRMINOS Y CONDICIONES:",
		"Documento generado electrónicamente",
	} {
		if !strings.Contains(content, expected) {
			t.Errorf("contract missing %q", expected)
		}
	}
}

func TestGenerateSpanishDates(t *testing.T) {
	content := Generate(sampleContractData())

	if !strings.Contains(content, "30 de agosto de 2026, 14:30") {
		t.Error("expected generation timestamp in Spanish")
	}
	// two-week rental from Aug 30 ends Sep 13
	if !strings.Contains(content, "El período de alquiler vence el 13 de septiembre de 2026") {
		t.Error("expected rental deadline in Spanish")
	}
}

func TestGenerateOmitsEmptySections(t *testing.T) {
	data := sampleContractData()
	data.CustomerPhone = nil
	data.Address = ""
	data.Items = data.Items[:1] // sale line only

	content := Generate(data)

	if strings.Contains(content, "Teléfono:") {
		t.Error("expected phone line omitted")
	}
	if strings.Contains(content, "Dirección:") {
		t.Error("expected address line omitted")
	}
	if strings.Contains(content, "--- ALQUILERES ---") {
		t.Error("expected rental section omitted")
	}
}

func TestUnitLabels(t *testing.T) {
	cases := []struct {
		unit  enums.DurationUnit
		count int
		want  string
	}{
		{enums.DurationUnitHours, 1, "hora"},
		{enums.DurationUnitHours, 3, "horas"},
		{enums.DurationUnitDays, 1, "día"},
		{enums.DurationUnitDays, 2, "días"},
		{enums.DurationUnitWeeks, 2, "semanas"},
		{enums.DurationUnitMonths, 1, "mes"},
		{enums.DurationUnitMonths, 6, "meses"},
	}
	for _, tc := range cases {
		if got := unitLabel(tc.unit, tc.count); got != tc.want {
			t.Errorf("unitLabel(%s, %d) = %q, want %q", tc.unit, tc.count, got, tc.want)
		}
	}
}
