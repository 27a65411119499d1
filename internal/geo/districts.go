package geo

import "github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"

// DistrictOrder is the fixed display order for federal districts.
var DistrictOrder = []model.FederalDistrict{
	model.DistrictCentral,
	model.DistrictNorthwestern,
	model.DistrictSouthern,
	model.DistrictNorthCaucasus,
	model.DistrictVolga,
	model.DistrictUral,
	model.DistrictSiberian,
	model.DistrictFarEastern,
}

// DistrictNames maps district codes to full display names.
var DistrictNames = map[model.FederalDistrict]string{
	model.DistrictCentral:       "Центральный ФО",
	model.DistrictNorthwestern:  "Северо-Западный ФО",
	model.DistrictSouthern:      "Южный ФО",
	model.DistrictNorthCaucasus: "Северо-Кавказский ФО",
	model.DistrictVolga:         "Приволжский ФО",
	model.DistrictUral:          "Уральский ФО",
	model.DistrictSiberian:      "Сибирский ФО",
	model.DistrictFarEastern:    "Дальневосточный ФО",
}

// DistrictColors maps district codes to their map colors.
var DistrictColors = map[model.FederalDistrict]string{
	model.DistrictCentral:       "#43A047",
	model.DistrictNorthwestern:  "#1E88E5",
	model.DistrictSouthern:      "#FB8C00",
	model.DistrictNorthCaucasus: "#8E24AA",
	model.DistrictVolga:         "#FDD835",
	model.DistrictUral:          "#00897B",
	model.DistrictSiberian:      "#6D4C41",
	model.DistrictFarEastern:    "#546E7A",
}

// DistrictRegions lists region ids per district, in list-panel order. Kept as
// an explicit table (not derived from the catalog) so CheckConsistency can
// cross-validate the two.
var DistrictRegions = map[model.FederalDistrict][]string{
	model.DistrictCentral: {
		"moscow_city", "moscow_oblast", "belgorod_oblast", "bryansk_oblast",
		"vladimir_oblast", "voronezh_oblast", "ivanovo_oblast", "kaluga_oblast",
		"kostroma_oblast", "kursk_oblast", "lipetsk_oblast", "oryol_oblast",
		"ryazan_oblast", "smolensk_oblast", "tambov_oblast", "tver_oblast",
		"tula_oblast", "yaroslavl_oblast",
	},
	model.DistrictNorthwestern: {
		"spb", "leningrad_oblast", "arkhangelsk_oblast", "vologda_oblast",
		"kaliningrad_oblast", "karelia", "komi", "murmansk_oblast",
		"nenets_ao", "novgorod_oblast", "pskov_oblast",
	},
	model.DistrictSouthern: {
		"krasnodar_krai", "adygea", "astrakhan_oblast", "volgograd_oblast",
		"kalmykia", "crimea", "rostov_oblast", "sevastopol",
	},
	model.DistrictNorthCaucasus: {
		"stavropol_krai", "dagestan", "ingushetia", "kabardino_balkaria",
		"karachay_cherkessia", "north_ossetia", "chechnya",
	},
	model.DistrictVolga: {
		"bashkortostan", "kirov_oblast", "mari_el", "mordovia",
		"nizhny_novgorod_oblast", "orenburg_oblast", "penza_oblast",
		"perm_krai", "samara_oblast", "saratov_oblast", "tatarstan",
		"udmurtia", "ulyanovsk_oblast", "chuvashia",
	},
	model.DistrictUral: {
		"kurgan_oblast", "sverdlovsk_oblast", "tyumen_oblast",
		"chelyabinsk_oblast", "khanty_mansi_ao", "yamal_ao",
	},
	model.DistrictSiberian: {
		"altai_republic", "altai_krai", "irkutsk_oblast", "kemerovo_oblast",
		"krasnoyarsk_krai", "novosibirsk_oblast", "omsk_oblast",
		"tomsk_oblast", "tuva", "khakassia",
	},
	model.DistrictFarEastern: {
		"amur_oblast", "buryatia", "jewish_ao", "zabaykalsky_krai",
		"kamchatka_krai", "magadan_oblast", "primorsky_krai",
		"sakhalin_oblast", "khabarovsk_krai", "chukotka_ao", "yakutia",
	},
}
