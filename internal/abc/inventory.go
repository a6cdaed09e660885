package abc

// Item describes a product or other inventory entry as the host displays it.
// Data only; the engine neither creates nor destroys inventory records.
type Item struct {
	// SKU is the unique identifier for the item.
	SKU string

	// Description briefly says what the product is.
	Description string

	// UPC is the item's Universal Product Code.
	UPC string

	// List is the customer-facing price appearing on invoices (retail).
	List float64

	// Cost is what the business pays for the item (wholesale).
	Cost float64

	// VendorID identifies the vendor that supplies the item.
	VendorID string
}
