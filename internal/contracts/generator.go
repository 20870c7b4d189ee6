package contracts

import (
	"fmt"
	"strings"
	"time"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/alquigo/alquigo-backend/pkg/types"
	"github.com/shopspring/decimal"
)

const sectionRule = "═══════════════════════════════════════════════════════════════"

// ContractData feeds the document template.
type ContractData struct {
	Reference     string
	GeneratedAt   time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Address       string
	Items         types.TransactionItems
	Total         decimal.Decimal
	Currency      enums.Currency
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func spanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

func spanishDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d:%02d", spanishDate(t), t.Hour(), t.Minute())
}

func unitLabel(unit enums.DurationUnit, count int) string {
	singular := map[enums.DurationUnit]string{
		enums.DurationUnitHours:  "hora",
		enums.DurationUnitDays:   "día",
		enums.DurationUnitWeeks:  "semana",
		enums.DurationUnitMonths: "mes",
	}[unit]
	if singular == "" {
		singular = string(unit)
	}
	if count == 1 {
		return singular
	}
	if singular == "mes" {
		return "meses"
	}
	return singular + "s"
}

func rentalDeadline(from time.Time, duration int, unit enums.DurationUnit) time.Time {
	switch unit {
	case enums.DurationUnitHours:
		return from.Add(time.Duration(duration) * time.Hour)
	case enums.DurationUnitWeeks:
		return from.AddDate(0, 0, duration*7)
	case enums.DurationUnitMonths:
		return from.AddDate(0, duration, 0)
	default:
		return from.AddDate(0, 0, duration)
	}
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// Generate renders the purchase/rental agreement document.
func Generate(data ContractData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CONTRATO DE COMPRA/ALQUILER - AlquiGo\n")
	fmt.Fprintf(&b, "Contrato No: %s\n", data.Reference)
	fmt.Fprintf(&b, "Fecha: %s\n\n", spanishDateTime(data.GeneratedAt))
	b.WriteString(sectionRule + "\n\n")

	b.WriteString("DATOS DEL CLIENTE:\n")
	fmt.Fprintf(&b, "Nombre: %s\n", data.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", data.CustomerEmail)
	if data.CustomerPhone != nil && strings.TrimSpace(*data.CustomerPhone) != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", *data.CustomerPhone)
	}
	if strings.TrimSpace(data.Address) != "" {
		fmt.Fprintf(&b, "Dirección: %s\n", data.Address)
	}
	b.WriteString("\n" + sectionRule + "\n\n")

	b.WriteString("ARTÍCULOS ADQUIRIDOS:\n\n")

	var saleItems, rentalItems types.TransactionItems
	for _, item := range data.Items {
		if item.Mode == enums.CartModeRental {
			rentalItems = append(rentalItems, item)
		} else {
			saleItems = append(saleItems, item)
		}
	}

	if len(saleItems) > 0 {
		b.WriteString("--- COMPRAS ---\n")
		for _, item := range saleItems {
			fmt.Fprintf(&b, "\n• %s\n", item.ProductName)
			fmt.Fprintf(&b, "  Vendedor: %s\n", item.SellerName)
			fmt.Fprintf(&b, "  Cantidad: %d\n", item.Quantity)
			fmt.Fprintf(&b, "  Precio unitario: %s\n", formatMoney(item.UnitPrice))
			fmt.Fprintf(&b, "  Subtotal: %s\n", formatMoney(item.LineTotal))
			fmt.Fprintf(&b, "  Estado: %s\n", item.Condition)
			fmt.Fprintf(&b, "  Ubicación: %s\n", item.Location)
		}
		b.WriteString("\n")
	}

	if len(rentalItems) > 0 {
		b.WriteString("--- ALQUILERES ---\n")
		for _, item := range rentalItems {
			label := unitLabel(item.RentalUnit, item.RentalDuration)
			fmt.Fprintf(&b, "\n• %s\n", item.ProductName)
			fmt.Fprintf(&b, "  Arrendador: %s\n", item.SellerName)
			fmt.Fprintf(&b, "  Cantidad: %d\n", item.Quantity)
			fmt.Fprintf(&b, "  Duración: %d %s\n", item.RentalDuration, label)
			fmt.Fprintf(&b, "  Precio por %s: %s\n", unitLabel(item.RentalUnit, 1), formatMoney(item.RentalRate))
			fmt.Fprintf(&b, "  Subtotal: %s\n", formatMoney(item.LineTotal))
			fmt.Fprintf(&b, "  Estado: %s\n", item.Condition)
			fmt.Fprintf(&b, "  Ubicación: %s\n", item.Location)
			b.WriteString("\n  CONDICIONES DE ALQUILER:\n")
			b.WriteString("  - El artículo debe ser devuelto en las mismas condiciones\n")
			deadline := rentalDeadline(data.GeneratedAt, item.RentalDuration, item.RentalUnit)
			fmt.Fprintf(&b, "  - El período de alquiler vence el %s\n", spanishDate(deadline))
			b.WriteString("  - Daños o pérdida del artículo serán cobrados al valor comercial\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionRule + "\n\n")
	b.WriteString("RESUMEN FINANCIERO:\n")
	fmt.Fprintf(&b, "Total a pagar: %s %s\n\n", formatMoney(data.Total), data.Currency)
	b.WriteString(sectionRule + "\n\n")

	b.WriteString(`TÉRMINOS Y CONDICIONES:

1. COMPRA:
   - La venta se considera final una vez procesado el pago
   - Los productos se entregan en las condiciones descritas
   - AlquiGo actúa como intermediario entre comprador y vendedor

2. ALQUILER:
   - El cliente se compromete a cuidar el artículo alquilado
   - La devolución debe realizarse en la fecha acordada
   - Retrasos en la devolución pueden generar cargos adicionales

3. RESPONSABILIDADES:
   - El cliente es responsable de los artículos desde la entrega
   - AlquiGo verificará el estado de los artículos al momento de la devolución
   - Cualquier disputa será resuelta según los términos de servicio

4. GARANTÍAS:
   - Los vendedores garantizan la autenticidad de sus productos
   - AlquiGo verifica la identidad de todos los vendedores
   - Política de devolución de 30 días para compras (sujeto a condiciones)

`)
	b.WriteString(sectionRule + "\n\n")
	b.WriteString("Al proceder con esta transacción, el cliente acepta todos los términos\n")
	b.WriteString("y condiciones establecidos en este contrato y en los términos de\n")
	b.WriteString("servicio de AlquiGo.\n\n")
	fmt.Fprintf(&b, "Documento generado electrónicamente el %s\n\n", spanishDateTime(data.GeneratedAt))
	b.WriteString("AlquiGo - Plataforma de Compra y Alquiler\n")
	b.WriteString("www.alquigo.com | soporte@alquigo.com\n")

	return b.String()
}
