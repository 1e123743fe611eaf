package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Text size names accepted by the format configuration. They map to
// the renderer's text size instruction.
const (
	TextSizeNormal = "normal"
	TextSizeTall   = "tall"
	TextSizeWide   = "wide"
	TextSizeBig    = "big"
)

// PrinterSettings holds the printer selection for each document role,
// read at startup and written on explicit save.
type PrinterSettings struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	KitchenDevice  string         `gorm:"size:255" json:"kitchen_device"`
	ClientDevice   string         `gorm:"size:255" json:"client_device"`
	PaperWidth     int            `gorm:"default:32" json:"paper_width"`
	DefaultCopies  int            `gorm:"default:1" json:"default_copies"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new printer settings
func (s *PrinterSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrinterSettings model
func (PrinterSettings) TableName() string {
	return "printer_settings"
}

// PrintFormatConfig is the closed set of layout options the ticket
// renderer understands. The renderer reads it, never writes it.
type PrintFormatConfig struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// Comanda (kitchen) options. ComandaShowPrices is accepted for
	// compatibility with older frontends but the kitchen document
	// never prints prices; the renderer ignores it.
	ComandaTitleSize    string   `gorm:"size:20;default:'big'" json:"comanda_title_size"`
	ComandaProductSize  string   `gorm:"size:20;default:'tall'" json:"comanda_product_size"`
	ComandaShowPrices   bool     `gorm:"default:false" json:"comanda_show_prices"`
	ComandaCopies       int      `gorm:"default:1" json:"comanda_copies"`
	ComandaCustomFields []string `gorm:"serializer:json" json:"comanda_custom_fields,omitempty"`

	// Client ticket options
	TicketHeaderSize     string `gorm:"size:20;default:'big'" json:"ticket_header_size"`
	TicketProductSize    string `gorm:"size:20;default:'normal'" json:"ticket_product_size"`
	TicketTotalSize      string `gorm:"size:20;default:'tall'" json:"ticket_total_size"`
	TicketCustomHeader   string `gorm:"size:255" json:"ticket_custom_header,omitempty"`
	TicketClosingMessage string `gorm:"size:255" json:"ticket_closing_message,omitempty"`
	TicketShowLogo       bool   `gorm:"default:false" json:"ticket_show_logo"`

	// Business identity block printed under the client ticket header
	BusinessName      string `gorm:"size:255" json:"business_name"`
	BusinessAddress   string `gorm:"size:255" json:"business_address,omitempty"`
	BusinessPhone     string `gorm:"size:50" json:"business_phone,omitempty"`
	BusinessTaxID     string `gorm:"size:50" json:"business_tax_id,omitempty"`
	BusinessExtraLine string `gorm:"size:255" json:"business_extra_line,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new format config
func (c *PrintFormatConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrintFormatConfig model
func (PrintFormatConfig) TableName() string {
	return "print_format_configs"
}

// DefaultPrintFormatConfig returns the configuration used before the
// first explicit save.
func DefaultPrintFormatConfig() *PrintFormatConfig {
	return &PrintFormatConfig{
		ComandaTitleSize:     TextSizeBig,
		ComandaProductSize:   TextSizeTall,
		ComandaCopies:        1,
		TicketHeaderSize:     TextSizeBig,
		TicketProductSize:    TextSizeNormal,
		TicketTotalSize:      TextSizeTall,
		TicketClosingMessage: "",
		BusinessName:         "FogonPOS",
	}
}
