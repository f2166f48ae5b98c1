// Package pattern maps card number prefixes to payment networks and the
// formatting rules that go with them.
package pattern

import "git.thinkinpower.net/cardkit/mod"

// prefix is either a literal prefix (max empty) or an inclusive range of
// equal width bounds.
type prefix struct {
	min string
	max string
}

func lit(p string) prefix {
	return prefix{min: p}
}

func rng(min, max string) prefix {
	return prefix{min: min, max: max}
}

type brandPattern struct {
	brand    mod.Brand
	prefixes []prefix
	format   mod.CardFormat
}

func format(gaps []int, lengths []int, code string, size int) mod.CardFormat {
	return mod.CardFormat{Gaps: gaps, Lengths: lengths, Code: mod.SecurityCode{Name: code, Size: size}}
}

var fourEightTwelve = []int{4, 8, 12}

// brandPatterns is ordered: brands are tested in this order and ties keep it.
var brandPatterns = []brandPattern{
	{
		brand:    mod.BrandVisa,
		prefixes: []prefix{lit("4")},
		format:   format(fourEightTwelve, []int{16, 18, 19}, "CVV", 3),
	},
	{
		brand: mod.BrandMastercard,
		prefixes: []prefix{
			rng("51", "55"), rng("2221", "2229"), rng("223", "229"),
			rng("23", "26"), rng("270", "271"), lit("2720"),
		},
		format: format(fourEightTwelve, []int{16}, "CVC", 3),
	},
	{
		brand:    mod.BrandAmex,
		prefixes: []prefix{lit("34"), lit("37")},
		format:   format([]int{4, 10}, []int{15}, "CID", 4),
	},
	{
		brand:    mod.BrandDiners,
		prefixes: []prefix{rng("300", "305"), lit("36"), lit("38"), lit("39")},
		format:   format([]int{4, 10}, []int{14, 16, 19}, "CVV", 3),
	},
	{
		brand:    mod.BrandDiscover,
		prefixes: []prefix{lit("6011"), rng("644", "649"), lit("65")},
		format:   format(fourEightTwelve, []int{16, 19}, "CID", 3),
	},
	{
		brand:    mod.BrandJCB,
		prefixes: []prefix{lit("2131"), lit("1800"), rng("3528", "3589")},
		format:   format(fourEightTwelve, []int{16, 17, 18, 19}, "CVV", 3),
	},
	{
		brand: mod.BrandUnionPay,
		prefixes: []prefix{
			lit("620"), rng("62100", "62182"), rng("62184", "62187"), rng("62185", "62197"),
			rng("62200", "62205"), rng("622010", "622999"), lit("622018"), rng("62207", "62209"),
			rng("623", "626"), lit("6270"), lit("6272"), lit("6276"),
			rng("627700", "627779"), rng("627781", "627799"), rng("6282", "6289"),
			lit("6291"), lit("6292"), lit("810"), rng("8110", "8131"),
			rng("8132", "8151"), rng("8152", "8163"), rng("8164", "8171"),
		},
		format: format(fourEightTwelve, []int{14, 15, 16, 17, 18, 19}, "CVN", 3),
	},
	{
		brand: mod.BrandMaestro,
		prefixes: []prefix{
			lit("493698"), rng("500000", "504174"), rng("504176", "506698"),
			rng("506779", "508999"), rng("56", "59"), lit("63"), lit("67"), lit("6"),
		},
		format: format(fourEightTwelve, []int{12, 13, 14, 15, 16, 17, 18, 19}, "CVC", 3),
	},
	{
		brand: mod.BrandElo,
		prefixes: []prefix{
			lit("401178"), lit("401179"), lit("438935"), lit("457631"), lit("457632"),
			lit("431274"), lit("451416"), lit("457393"), lit("504175"),
			rng("506699", "506778"), rng("509000", "509999"), lit("627780"),
			lit("636297"), lit("636368"), rng("650031", "650033"), rng("650035", "650051"),
			rng("650405", "650439"), rng("650485", "650538"), rng("650541", "650598"),
			rng("650700", "650718"), rng("650720", "650727"), rng("650901", "650978"),
			rng("651652", "651679"), rng("655000", "655019"), rng("655021", "655058"),
		},
		format: format(fourEightTwelve, []int{16}, "CVE", 3),
	},
	{
		brand:    mod.BrandMir,
		prefixes: []prefix{rng("2200", "2204")},
		format:   format(fourEightTwelve, []int{16, 17, 18, 19}, "CVP2", 3),
	},
	{
		brand: mod.BrandHiper,
		prefixes: []prefix{
			lit("637095"), lit("63737423"), lit("63743358"), lit("637568"),
			lit("637599"), lit("637609"), lit("637612"),
		},
		format: format(fourEightTwelve, []int{16}, "CVC", 3),
	},
	{
		brand:    mod.BrandHipercard,
		prefixes: []prefix{lit("606282")},
		format:   format(fourEightTwelve, []int{16}, "CVC", 3),
	},
	{
		brand:    mod.BrandVerve,
		prefixes: []prefix{rng("506099", "506198"), rng("650002", "650027"), rng("507865", "507964")},
		format:   format(fourEightTwelve, []int{16, 18, 19}, "CVV", 3),
	},
}
