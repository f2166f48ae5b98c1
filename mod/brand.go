package mod

type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandDiners     Brand = "diners"
	BrandJCB        Brand = "jcb"
	BrandUnionPay   Brand = "unionpay"
	BrandMaestro    Brand = "maestro"
	BrandMir        Brand = "mir"
	BrandElo        Brand = "elo"
	BrandHipercard  Brand = "hipercard"
	BrandHiper      Brand = "hiper"
	BrandVerve      Brand = "verve"
	BrandUnknown    Brand = "unknown"
)

// Name returns the display name of the brand.
func (b Brand) Name() string {
	switch b {
	case BrandVisa:
		return "Visa"
	case BrandMastercard:
		return "Mastercard"
	case BrandAmex:
		return "American Express"
	case BrandDiscover:
		return "Discover"
	case BrandDiners:
		return "Diners Club"
	case BrandJCB:
		return "JCB"
	case BrandUnionPay:
		return "UnionPay"
	case BrandMaestro:
		return "Maestro"
	case BrandMir:
		return "Mir"
	case BrandElo:
		return "Elo"
	case BrandHipercard:
		return "Hipercard"
	case BrandHiper:
		return "Hiper"
	case BrandVerve:
		return "Verve"
	}
	return "Unknown"
}

// Region returns the first region, in table order, whose brand list contains b.
func (b Brand) Region() CardRegion {
	for _, region := range regionOrder {
		for _, brand := range regionalBrands[region] {
			if brand == b {
				return region
			}
		}
	}
	return RegionUnknown
}

// IsLatam reports whether the brand only circulates in Latin America.
func (b Brand) IsLatam() bool {
	switch b {
	case BrandElo, BrandHipercard, BrandHiper:
		return true
	}
	return false
}

// Installments returns whether the brand supports installment plans and the
// maximum number of installments, zero when unsupported.
func (b Brand) Installments() (bool, int) {
	switch b {
	case BrandVisa, BrandMastercard:
		return true, 48
	case BrandAmex:
		return true, 24
	case BrandElo, BrandHipercard, BrandDiners:
		return true, 12
	}
	return false, 0
}

var regionOrder = []CardRegion{RegionGlobal, RegionLatam, RegionEurope, RegionAsia, RegionAfrica}

var regionalBrands = map[CardRegion][]Brand{
	RegionGlobal: {BrandVisa, BrandMastercard, BrandAmex, BrandDiscover, BrandJCB},
	RegionLatam:  {BrandElo, BrandHipercard, BrandHiper},
	RegionEurope: {BrandMaestro},
	RegionAsia:   {BrandUnionPay, BrandJCB},
	RegionAfrica: {BrandVerve},
}
