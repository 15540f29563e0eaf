package domain

import (
	"time"
)

type VinylFormat string

const (
	FormatLP     VinylFormat = "LP"
	Format7Inch  VinylFormat = "7 inch"
	Format12Inch VinylFormat = "12 inch"
	FormatEP     VinylFormat = "EP"
	FormatSingle VinylFormat = "Single"
	FormatBoxSet VinylFormat = "Box Set"
)

var VinylFormats = []VinylFormat{FormatLP, Format7Inch, Format12Inch, FormatEP, FormatSingle, FormatBoxSet}

type VinylGrade string

const (
	GradeMint         VinylGrade = "Mint (M)"
	GradeNearMint     VinylGrade = "Near Mint (NM)"
	GradeVeryGoodPlus VinylGrade = "Very Good Plus (VG+)"
	GradeVeryGood     VinylGrade = "Very Good (VG)"
	GradeGoodPlus     VinylGrade = "Good Plus (G+)"
	GradeGood         VinylGrade = "Good (G)"
	GradeFair         VinylGrade = "Fair (F)"
	GradePoor         VinylGrade = "Poor (P)"
)

var VinylGrades = []VinylGrade{GradeMint, GradeNearMint, GradeVeryGoodPlus, GradeVeryGood, GradeGoodPlus, GradeGood, GradeFair, GradePoor}

type Marketplace string

const (
	MarketplaceEBay    Marketplace = "eBay"
	MarketplaceDiscogs Marketplace = "Discogs"
	MarketplaceAmazon  Marketplace = "Amazon"
)

var Marketplaces = []Marketplace{MarketplaceEBay, MarketplaceDiscogs, MarketplaceAmazon}

type VinylStatus string

const (
	StatusDraft  VinylStatus = "draft"
	StatusActive VinylStatus = "active"
	StatusSold   VinylStatus = "sold"
)

var VinylStatuses = []VinylStatus{StatusDraft, StatusActive, StatusSold}

// MarketplaceSettings overrides price/quantity/status for one marketplace listing.
type MarketplaceSettings struct {
	Status           string `json:"status"`
	PriceOverride    string `json:"priceOverride,omitempty"`
	QuantityOverride *int   `json:"quantityOverride,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

type OnlineSettings struct {
	ListingTitleOverride string                              `json:"listingTitleOverride,omitempty"`
	ListingDescription   string                              `json:"listingDescription,omitempty"`
	SKU                  string                              `json:"sku,omitempty"`
	ShippingProfileName  string                              `json:"shippingProfileName,omitempty"`
	PerMarketplace       map[Marketplace]MarketplaceSettings `json:"perMarketplace,omitempty"`
}

// Vinyl is one catalog record. Prices are display strings ("$45.00"); the
// sales ledger converts to cents when an order is cut.
type Vinyl struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Status    VinylStatus `json:"status"`

	Artist           string      `json:"artist"`
	ReleaseTitle     string      `json:"releaseTitle"`
	Label            string      `json:"label,omitempty"`
	CatalogNumber    string      `json:"catalogNumber,omitempty"`
	Format           VinylFormat `json:"format,omitempty"`
	CountryOfRelease string      `json:"countryOfRelease,omitempty"`
	YearOfRelease    string      `json:"yearOfRelease,omitempty"`
	EditionNotes     string      `json:"editionNotes,omitempty"`

	MatrixRunoutSideA           string `json:"matrixRunoutSideA,omitempty"`
	MatrixRunoutSideB           string `json:"matrixRunoutSideB,omitempty"`
	AdditionalRunoutMarkings    bool   `json:"additionalRunoutMarkings,omitempty"`
	MasteringIdentifiersPresent bool   `json:"masteringIdentifiersPresent,omitempty"`

	MediaGrade             VinylGrade `json:"mediaGrade,omitempty"`
	SleeveGrade            VinylGrade `json:"sleeveGrade,omitempty"`
	PlayTested             bool       `json:"playTested,omitempty"`
	PlaybackIssues         bool       `json:"playbackIssues,omitempty"`
	PlaybackNotes          string     `json:"playbackNotes,omitempty"`
	WarpPresent            bool       `json:"warpPresent,omitempty"`
	WarpAffectsPlay        bool       `json:"warpAffectsPlay,omitempty"`
	PressingDefectsPresent bool       `json:"pressingDefectsPresent,omitempty"`

	OriginalInnerSleeveIncluded       bool `json:"originalInnerSleeveIncluded,omitempty"`
	OriginalInsertsIncluded           bool `json:"originalInsertsIncluded,omitempty"`
	SeamSplitsPresent                 bool `json:"seamSplitsPresent,omitempty"`
	WritingOrStickersOnSleeveOrLabels bool `json:"writingOrStickersOnSleeveOrLabels,omitempty"`
	SealedCopy                        bool `json:"sealedCopy,omitempty"`
	ShrinkOriginal                    bool `json:"shrinkOriginal,omitempty"`

	SellerNotes string `json:"sellerNotes,omitempty"`
	Price       string `json:"price,omitempty"`

	InStore         bool            `json:"inStore"`
	Online          bool            `json:"online"`
	HoldForCustomer bool            `json:"holdForCustomer"`
	Network         bool            `json:"network"`
	Quantity        int             `json:"quantity"`
	Location        string          `json:"location,omitempty"`
	Marketplaces    []Marketplace   `json:"marketplaces"`
	ImagePath       string          `json:"imagePath,omitempty"`
	OnlineSettings  *OnlineSettings `json:"onlineSettings,omitempty"`
}

// VinylInput carries caller-supplied fields for create and partial update.
// Nil means "not provided": create substitutes defaults, update keeps the
// existing value.
type VinylInput struct {
	Artist           *string      `json:"artist"`
	ReleaseTitle     *string      `json:"releaseTitle"`
	Label            *string      `json:"label"`
	CatalogNumber    *string      `json:"catalogNumber"`
	Format           *VinylFormat `json:"format"`
	CountryOfRelease *string      `json:"countryOfRelease"`
	YearOfRelease    *string      `json:"yearOfRelease"`
	EditionNotes     *string      `json:"editionNotes"`

	MatrixRunoutSideA           *string `json:"matrixRunoutSideA"`
	MatrixRunoutSideB           *string `json:"matrixRunoutSideB"`
	AdditionalRunoutMarkings    *bool   `json:"additionalRunoutMarkings"`
	MasteringIdentifiersPresent *bool   `json:"masteringIdentifiersPresent"`

	MediaGrade             *VinylGrade `json:"mediaGrade"`
	SleeveGrade            *VinylGrade `json:"sleeveGrade"`
	PlayTested             *bool       `json:"playTested"`
	PlaybackIssues         *bool       `json:"playbackIssues"`
	PlaybackNotes          *string     `json:"playbackNotes"`
	WarpPresent            *bool       `json:"warpPresent"`
	WarpAffectsPlay        *bool       `json:"warpAffectsPlay"`
	PressingDefectsPresent *bool       `json:"pressingDefectsPresent"`

	OriginalInnerSleeveIncluded       *bool `json:"originalInnerSleeveIncluded"`
	OriginalInsertsIncluded           *bool `json:"originalInsertsIncluded"`
	SeamSplitsPresent                 *bool `json:"seamSplitsPresent"`
	WritingOrStickersOnSleeveOrLabels *bool `json:"writingOrStickersOnSleeveOrLabels"`
	SealedCopy                        *bool `json:"sealedCopy"`
	ShrinkOriginal                    *bool `json:"shrinkOriginal"`

	SellerNotes *string `json:"sellerNotes"`
	Price       *string `json:"price"`

	InStore         *bool           `json:"inStore"`
	Online          *bool           `json:"online"`
	HoldForCustomer *bool           `json:"holdForCustomer"`
	Network         *bool           `json:"network"`
	Quantity        *int            `json:"quantity"`
	Location        *string         `json:"location"`
	Marketplaces    *[]Marketplace  `json:"marketplaces"`
	ImagePath       *string         `json:"imagePath"`
	Status          *VinylStatus    `json:"status"`
	OnlineSettings  *OnlineSettings `json:"onlineSettings"`
}
