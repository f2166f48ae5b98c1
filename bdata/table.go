package bdata

import "git.thinkinpower.net/cardkit/mod"

func bin(t mod.CardType, l mod.CardLevel) mod.BinMetadata {
	return mod.BinMetadata{Type: t, Level: l}
}

func latam(t mod.CardType, l mod.CardLevel) mod.BinMetadata {
	return mod.BinMetadata{Type: t, Level: l, Region: mod.RegionLatam}
}

const (
	credit  = mod.CardTypeCredit
	debit   = mod.CardTypeDebit
	prepaid = mod.CardTypePrepaid
)

// builtinBins is an approximation of issuer product tiers, not a registry.
var builtinBins = map[string]mod.BinMetadata{
	// visa
	"4000": bin(credit, mod.LevelClassic),
	"4012": bin(credit, mod.LevelClassic),
	"4111": bin(credit, mod.LevelClassic),
	"4147": bin(credit, mod.LevelGold),
	"4242": bin(credit, mod.LevelGold),
	"4532": bin(credit, mod.LevelGold),
	"4539": bin(credit, mod.LevelPlatinum),
	"4556": bin(credit, mod.LevelPlatinum),
	"4716": bin(credit, mod.LevelPlatinum),
	"4917": bin(credit, mod.LevelSignature),
	"4929": bin(credit, mod.LevelSignature),
	"4916": bin(credit, mod.LevelInfinite),
	"4844": bin(credit, mod.LevelInfinite),
	"4815": bin(credit, mod.LevelBusiness),
	"4818": bin(credit, mod.LevelBusiness),
	"4026": bin(debit, mod.LevelClassic),
	"4508": bin(debit, mod.LevelClassic),
	"4213": bin(prepaid, mod.LevelClassic),
	"4400": bin(prepaid, mod.LevelClassic),

	// mastercard
	"5100": bin(credit, mod.LevelClassic),
	"5111": bin(credit, mod.LevelClassic),
	"5123": bin(credit, mod.LevelClassic),
	"5105": bin(credit, mod.LevelClassic),
	"51":   bin(credit, mod.LevelClassic),
	"52":   bin(credit, mod.LevelClassic),
	"5200": bin(credit, mod.LevelGold),
	"5212": bin(credit, mod.LevelGold),
	"5324": bin(credit, mod.LevelGold),
	"53":   bin(credit, mod.LevelGold),
	"5400": bin(credit, mod.LevelPlatinum),
	"5425": bin(credit, mod.LevelPlatinum),
	"5431": bin(credit, mod.LevelPlatinum),
	"54":   bin(credit, mod.LevelPlatinum),
	"5500": bin(credit, mod.LevelSignature),
	"5512": bin(credit, mod.LevelSignature),
	"55":   bin(credit, mod.LevelPlatinum),
	"5555": bin(credit, mod.LevelBlack),
	"5556": bin(credit, mod.LevelBlack),
	"5520": bin(credit, mod.LevelBusiness),
	"5580": bin(credit, mod.LevelCorporate),
	"5018": bin(debit, mod.LevelClassic),
	"5020": bin(debit, mod.LevelClassic),
	"5038": bin(debit, mod.LevelClassic),
	"5893": bin(debit, mod.LevelClassic),
	"5300": bin(prepaid, mod.LevelClassic),

	// mastercard 2-series
	"2221": bin(credit, mod.LevelClassic),
	"2223": bin(credit, mod.LevelGold),
	"2320": bin(credit, mod.LevelPlatinum),
	"2500": bin(credit, mod.LevelSignature),
	"2720": bin(credit, mod.LevelBlack),

	// amex
	"3400": bin(credit, mod.LevelGold),
	"3411": bin(credit, mod.LevelGold),
	"34":   bin(credit, mod.LevelGold),
	"3700": bin(credit, mod.LevelPlatinum),
	"3714": bin(credit, mod.LevelPlatinum),
	"3782": bin(credit, mod.LevelPlatinum),
	"37":   bin(credit, mod.LevelPlatinum),
	"3742": bin(credit, mod.LevelBlack),
	"3787": bin(credit, mod.LevelBlack),
	"3715": bin(credit, mod.LevelBusiness),
	"3743": bin(credit, mod.LevelCorporate),

	// discover
	"6011": bin(credit, mod.LevelClassic),
	"6221": bin(credit, mod.LevelClassic),
	"6445": bin(credit, mod.LevelGold),
	"6500": bin(credit, mod.LevelPlatinum),

	// diners
	"3000": bin(credit, mod.LevelClassic),
	"3050": bin(credit, mod.LevelGold),
	"3095": bin(credit, mod.LevelPlatinum),
	"36":   bin(credit, mod.LevelClassic),
	"38":   bin(credit, mod.LevelGold),

	// jcb
	"3528": bin(credit, mod.LevelClassic),
	"3540": bin(credit, mod.LevelGold),
	"3569": bin(credit, mod.LevelPlatinum),

	// elo
	"4011":   latam(credit, mod.LevelClassic),
	"4312":   latam(credit, mod.LevelGold),
	"5067":   latam(credit, mod.LevelPlatinum),
	"6362":   latam(credit, mod.LevelClassic),
	"636297": latam(credit, mod.LevelClassic),
	"636368": latam(credit, mod.LevelGold),

	// hipercard
	"6062": latam(credit, mod.LevelClassic),
	"3841": latam(credit, mod.LevelGold),

	// prepaid programs
	"4917300": bin(prepaid, mod.LevelClassic),
	"438935":  bin(prepaid, mod.LevelClassic),
	"451416":  bin(prepaid, mod.LevelClassic),
	"504175":  bin(prepaid, mod.LevelClassic),
	"627780":  bin(prepaid, mod.LevelClassic),
}
