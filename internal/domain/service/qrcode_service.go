package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateShopQR generates a QR code PNG encoding the public
	// directory URL of the given shop.
	GenerateShopQR(shopID string) ([]byte, error)
}
