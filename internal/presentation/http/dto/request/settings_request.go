package request

// UpdatePrinterSettingsRequest represents the printer settings body
type UpdatePrinterSettingsRequest struct {
	KitchenDevice string `json:"kitchen_device"`
	ClientDevice  string `json:"client_device"`
	PaperWidth    int    `json:"paper_width" binding:"required"`
	DefaultCopies int    `json:"default_copies" binding:"required,min=1"`
}

// UpdateFormatConfigRequest represents the ticket format config body
type UpdateFormatConfigRequest struct {
	ComandaTitleSize    string   `json:"comanda_title_size"`
	ComandaProductSize  string   `json:"comanda_product_size"`
	ComandaShowPrices   bool     `json:"comanda_show_prices"`
	ComandaCopies       int      `json:"comanda_copies" binding:"required,min=1"`
	ComandaCustomFields []string `json:"comanda_custom_fields"`

	TicketHeaderSize     string `json:"ticket_header_size"`
	TicketProductSize    string `json:"ticket_product_size"`
	TicketTotalSize      string `json:"ticket_total_size"`
	TicketCustomHeader   string `json:"ticket_custom_header"`
	TicketClosingMessage string `json:"ticket_closing_message"`
	TicketShowLogo       bool   `json:"ticket_show_logo"`

	BusinessName      string `json:"business_name" binding:"required"`
	BusinessAddress   string `json:"business_address"`
	BusinessPhone     string `json:"business_phone"`
	BusinessTaxID     string `json:"business_tax_id"`
	BusinessExtraLine string `json:"business_extra_line"`
}
