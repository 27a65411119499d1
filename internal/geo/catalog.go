package geo

import (
	"fmt"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/model"
)

func reg(id, label string, d model.FederalDistrict, lon, lat, area float64, capital string, capLon, capLat float64) model.Region {
	return model.Region{
		ID:            id,
		Label:         label,
		District:      d,
		Center:        model.Coordinate{Lon: lon, Lat: lat},
		AreaKm2:       area,
		Capital:       capital,
		CapitalCoords: model.Coordinate{Lon: capLon, Lat: capLat},
	}
}

// regions is the build-time-authored catalog: approximate geographic centers,
// areas for visual scaling, and administrative centers.
var regions = []model.Region{
	reg("moscow_city", "Москва", model.DistrictCentral, 37.62, 55.76, 2561, "Москва", 37.62, 55.76),
	reg("moscow_oblast", "Московская обл.", model.DistrictCentral, 38.2, 55.3, 44329, "Красногорск", 37.33, 55.82),
	reg("belgorod_oblast", "Белгородская обл.", model.DistrictCentral, 37.0, 50.8, 27134, "Белгород", 36.59, 50.60),
	reg("bryansk_oblast", "Брянская обл.", model.DistrictCentral, 33.5, 53.0, 34857, "Брянск", 34.36, 53.24),
	reg("vladimir_oblast", "Владимирская обл.", model.DistrictCentral, 40.6, 56.3, 29084, "Владимир", 40.41, 56.13),
	reg("voronezh_oblast", "Воронежская обл.", model.DistrictCentral, 40.0, 51.3, 52216, "Воронеж", 39.20, 51.66),
	reg("ivanovo_oblast", "Ивановская обл.", model.DistrictCentral, 41.5, 57.1, 21437, "Иваново", 40.97, 56.99),
	reg("kaluga_oblast", "Калужская обл.", model.DistrictCentral, 35.8, 54.3, 29777, "Калуга", 36.27, 54.51),
	reg("kostroma_oblast", "Костромская обл.", model.DistrictCentral, 43.5, 58.2, 60211, "Кострома", 40.93, 57.77),
	reg("kursk_oblast", "Курская обл.", model.DistrictCentral, 36.5, 51.7, 29997, "Курск", 36.19, 51.73),
	reg("lipetsk_oblast", "Липецкая обл.", model.DistrictCentral, 39.5, 52.5, 24047, "Липецк", 39.57, 52.61),
	reg("oryol_oblast", "Орловская обл.", model.DistrictCentral, 36.3, 52.8, 24652, "Орёл", 36.06, 52.97),
	reg("ryazan_oblast", "Рязанская обл.", model.DistrictCentral, 40.5, 54.5, 39605, "Рязань", 39.72, 54.63),
	reg("smolensk_oblast", "Смоленская обл.", model.DistrictCentral, 32.5, 55.0, 49779, "Смоленск", 32.05, 54.78),
	reg("tambov_oblast", "Тамбовская обл.", model.DistrictCentral, 41.5, 52.5, 34462, "Тамбов", 41.43, 52.72),
	reg("tver_oblast", "Тверская обл.", model.DistrictCentral, 35.5, 57.0, 84201, "Тверь", 35.89, 56.86),
	reg("tula_oblast", "Тульская обл.", model.DistrictCentral, 37.6, 54.0, 25679, "Тула", 37.62, 54.19),
	reg("yaroslavl_oblast", "Ярославская обл.", model.DistrictCentral, 39.5, 57.7, 36177, "Ярославль", 39.89, 57.63),

	reg("spb", "СПб", model.DistrictNorthwestern, 30.3, 59.9, 1439, "Санкт-Петербург", 30.32, 59.94),
	reg("leningrad_oblast", "Ленинградская обл.", model.DistrictNorthwestern, 30.5, 60.5, 83908, "Гатчина", 30.13, 59.57),
	reg("arkhangelsk_oblast", "Архангельская обл.", model.DistrictNorthwestern, 42.0, 63.5, 589913, "Архангельск", 40.54, 64.54),
	reg("vologda_oblast", "Вологодская обл.", model.DistrictNorthwestern, 39.5, 59.5, 144527, "Вологда", 39.88, 59.22),
	reg("kaliningrad_oblast", "Калинингр. обл.", model.DistrictNorthwestern, 20.5, 54.7, 15125, "Калининград", 20.51, 54.71),
	reg("karelia", "Карелия", model.DistrictNorthwestern, 33.0, 63.5, 180520, "Петрозаводск", 34.35, 61.79),
	reg("komi", "Коми", model.DistrictNorthwestern, 55.0, 63.0, 416774, "Сыктывкар", 50.84, 61.67),
	reg("murmansk_oblast", "Мурманская обл.", model.DistrictNorthwestern, 35.0, 68.5, 144900, "Мурманск", 33.09, 68.97),
	reg("nenets_ao", "НАО", model.DistrictNorthwestern, 53.0, 68.0, 176810, "Нарьян-Мар", 53.09, 67.64),
	reg("novgorod_oblast", "Новгородская обл.", model.DistrictNorthwestern, 31.5, 58.3, 55300, "Великий Новгород", 31.28, 58.52),
	reg("pskov_oblast", "Псковская обл.", model.DistrictNorthwestern, 29.5, 57.0, 55300, "Псков", 28.33, 57.82),

	reg("krasnodar_krai", "Краснодарский край", model.DistrictSouthern, 39.5, 45.5, 75485, "Краснодар", 38.98, 45.04),
	reg("adygea", "Адыгея", model.DistrictSouthern, 40.2, 44.8, 7792, "Майкоп", 40.10, 44.61),
	reg("astrakhan_oblast", "Астраханская обл.", model.DistrictSouthern, 47.5, 46.5, 49024, "Астрахань", 48.03, 46.35),
	reg("volgograd_oblast", "Волгоградская обл.", model.DistrictSouthern, 43.5, 49.5, 112877, "Волгоград", 44.51, 48.71),
	reg("kalmykia", "Калмыкия", model.DistrictSouthern, 45.0, 46.0, 74731, "Элиста", 44.27, 46.31),
	reg("crimea", "Крым", model.DistrictSouthern, 34.0, 45.0, 26081, "Симферополь", 34.10, 44.95),
	reg("rostov_oblast", "Ростовская обл.", model.DistrictSouthern, 40.0, 47.5, 100967, "Ростов-на-Дону", 39.72, 47.24),
	reg("sevastopol", "Севастополь", model.DistrictSouthern, 33.5, 44.5, 864, "Севастополь", 33.52, 44.60),

	reg("stavropol_krai", "Ставропольский край", model.DistrictNorthCaucasus, 43.0, 44.5, 66500, "Ставрополь", 41.97, 45.04),
	reg("dagestan", "Дагестан", model.DistrictNorthCaucasus, 47.0, 43.0, 50270, "Махачкала", 47.50, 42.98),
	reg("ingushetia", "Ингушетия", model.DistrictNorthCaucasus, 44.8, 43.2, 3628, "Магас", 44.81, 43.17),
	reg("kabardino_balkaria", "КБР", model.DistrictNorthCaucasus, 43.5, 43.5, 12470, "Нальчик", 43.49, 43.50),
	reg("karachay_cherkessia", "КЧР", model.DistrictNorthCaucasus, 42.0, 43.7, 14277, "Черкесск", 42.06, 44.23),
	reg("north_ossetia", "С. Осетия", model.DistrictNorthCaucasus, 44.2, 43.0, 7987, "Владикавказ", 44.67, 43.02),
	reg("chechnya", "Чечня", model.DistrictNorthCaucasus, 45.7, 43.3, 15647, "Грозный", 45.69, 43.32),

	reg("bashkortostan", "Башкирия", model.DistrictVolga, 56.5, 54.5, 142947, "Уфа", 55.97, 54.73),
	reg("kirov_oblast", "Кировская обл.", model.DistrictVolga, 50.0, 58.5, 120374, "Киров", 49.66, 58.60),
	reg("mari_el", "Марий Эл", model.DistrictVolga, 48.0, 56.7, 23375, "Йошкар-Ола", 47.89, 56.63),
	reg("mordovia", "Мордовия", model.DistrictVolga, 44.5, 54.2, 26128, "Саранск", 45.18, 54.19),
	reg("nizhny_novgorod_oblast", "Нижегородская обл.", model.DistrictVolga, 44.0, 56.2, 76624, "Нижний Новгород", 43.99, 56.33),
	reg("orenburg_oblast", "Оренбургская обл.", model.DistrictVolga, 55.0, 51.8, 123702, "Оренбург", 55.10, 51.77),
	reg("penza_oblast", "Пензенская обл.", model.DistrictVolga, 44.5, 53.2, 43352, "Пенза", 45.02, 53.19),
	reg("perm_krai", "Пермский край", model.DistrictVolga, 56.0, 58.5, 160236, "Пермь", 56.25, 58.01),
	reg("samara_oblast", "Самарская обл.", model.DistrictVolga, 50.5, 53.3, 53565, "Самара", 50.15, 53.20),
	reg("saratov_oblast", "Саратовская обл.", model.DistrictVolga, 46.5, 51.8, 101240, "Саратов", 46.03, 51.53),
	reg("tatarstan", "Татарстан", model.DistrictVolga, 50.0, 55.5, 67847, "Казань", 49.11, 55.79),
	reg("udmurtia", "Удмуртия", model.DistrictVolga, 53.0, 57.0, 42061, "Ижевск", 53.23, 56.85),
	reg("ulyanovsk_oblast", "Ульяновская обл.", model.DistrictVolga, 48.0, 54.0, 37181, "Ульяновск", 48.40, 54.31),
	reg("chuvashia", "Чувашия", model.DistrictVolga, 47.0, 55.8, 18343, "Чебоксары", 47.25, 56.13),

	reg("kurgan_oblast", "Курганская обл.", model.DistrictUral, 64.5, 55.3, 71488, "Курган", 65.33, 55.44),
	reg("sverdlovsk_oblast", "Свердловская обл.", model.DistrictUral, 61.0, 57.0, 194307, "Екатеринбург", 60.60, 56.84),
	reg("tyumen_oblast", "Тюменская обл.", model.DistrictUral, 68.0, 58.0, 160122, "Тюмень", 68.25, 57.15),
	reg("chelyabinsk_oblast", "Челябинская обл.", model.DistrictUral, 60.5, 54.7, 87900, "Челябинск", 61.40, 55.15),
	reg("khanty_mansi_ao", "ХМАО", model.DistrictUral, 71.0, 62.0, 534801, "Ханты-Мансийск", 69.00, 61.00),
	reg("yamal_ao", "ЯНАО", model.DistrictUral, 70.0, 68.0, 769250, "Салехард", 66.60, 66.53),

	reg("altai_republic", "Р. Алтай", model.DistrictSiberian, 86.5, 50.5, 92903, "Горно-Алтайск", 85.96, 51.96),
	reg("altai_krai", "Алтайский край", model.DistrictSiberian, 83.0, 52.5, 167996, "Барнаул", 83.76, 53.35),
	reg("irkutsk_oblast", "Иркутская обл.", model.DistrictSiberian, 106.0, 55.5, 774846, "Иркутск", 104.28, 52.29),
	reg("kemerovo_oblast", "Кемеровская обл.", model.DistrictSiberian, 86.5, 54.5, 95725, "Кемерово", 86.09, 55.35),
	reg("krasnoyarsk_krai", "Красноярский край", model.DistrictSiberian, 95.0, 64.0, 2366797, "Красноярск", 92.87, 56.01),
	reg("novosibirsk_oblast", "Новосибирская обл.", model.DistrictSiberian, 79.5, 55.0, 177756, "Новосибирск", 82.92, 55.03),
	reg("omsk_oblast", "Омская обл.", model.DistrictSiberian, 73.5, 55.5, 141140, "Омск", 73.37, 54.99),
	reg("tomsk_oblast", "Томская обл.", model.DistrictSiberian, 82.0, 58.5, 314391, "Томск", 84.97, 56.49),
	reg("tuva", "Тыва", model.DistrictSiberian, 95.0, 51.5, 168604, "Кызыл", 94.44, 51.72),
	reg("khakassia", "Хакасия", model.DistrictSiberian, 90.0, 53.5, 61569, "Абакан", 91.43, 53.72),

	reg("amur_oblast", "Амурская обл.", model.DistrictFarEastern, 129.0, 53.0, 361908, "Благовещенск", 127.54, 50.29),
	reg("buryatia", "Бурятия", model.DistrictFarEastern, 111.0, 53.0, 351334, "Улан-Удэ", 107.59, 51.83),
	reg("jewish_ao", "ЕАО", model.DistrictFarEastern, 132.5, 48.5, 36271, "Биробиджан", 132.93, 48.79),
	reg("zabaykalsky_krai", "Забайкальский край", model.DistrictFarEastern, 116.0, 52.5, 431892, "Чита", 113.50, 52.03),
	reg("kamchatka_krai", "Камчатский край", model.DistrictFarEastern, 159.0, 56.0, 464275, "Петропавловск-Камч.", 158.65, 53.01),
	reg("magadan_oblast", "Магаданская обл.", model.DistrictFarEastern, 152.0, 62.0, 462464, "Магадан", 150.80, 59.56),
	reg("primorsky_krai", "Приморский край", model.DistrictFarEastern, 134.0, 44.5, 164673, "Владивосток", 131.89, 43.12),
	reg("sakhalin_oblast", "Сахалинская обл.", model.DistrictFarEastern, 143.0, 50.0, 87101, "Южно-Сахалинск", 142.74, 46.96),
	reg("khabarovsk_krai", "Хабаровский край", model.DistrictFarEastern, 135.0, 54.0, 787633, "Хабаровск", 135.07, 48.48),
	reg("chukotka_ao", "Чукотка", model.DistrictFarEastern, 171.0, 66.0, 721481, "Анадырь", 177.51, 64.73),
	reg("yakutia", "Якутия", model.DistrictFarEastern, 127.0, 65.0, 3083523, "Якутск", 129.73, 62.03),
}

var catalogByID = func() map[string]model.Region {
	m := make(map[string]model.Region, len(regions))
	for _, r := range regions {
		m[r.ID] = r
	}
	return m
}()

// Catalog returns the region catalog keyed by id. Callers must not mutate it.
func Catalog() map[string]model.Region {
	return catalogByID
}

// Regions returns all regions in catalog order.
func Regions() []model.Region {
	return regions
}

// Get looks up a region by id.
func Get(id string) (model.Region, bool) {
	r, ok := catalogByID[id]
	return r, ok
}

// CheckConsistency validates the catalog against the district membership
// tables. Malformed data here is a build-time defect; this runs in the check
// command and at server startup.
func CheckConsistency() error {
	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		if seen[r.ID] {
			return fmt.Errorf("duplicate region id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Label == "" {
			return fmt.Errorf("region %q has no label", r.ID)
		}
		if r.AreaKm2 <= 0 {
			return fmt.Errorf("region %q has non-positive area", r.ID)
		}
		if (r.Center == model.Coordinate{}) {
			return fmt.Errorf("region %q has no center", r.ID)
		}
		if _, ok := DistrictNames[r.District]; !ok {
			return fmt.Errorf("region %q has unknown district %q", r.ID, r.District)
		}
	}

	listed := make(map[string]model.FederalDistrict)
	for d, ids := range DistrictRegions {
		for _, id := range ids {
			if prev, ok := listed[id]; ok {
				return fmt.Errorf("region %q listed in both %q and %q", id, prev, d)
			}
			listed[id] = d

			r, ok := catalogByID[id]
			if !ok {
				return fmt.Errorf("district %q lists unknown region %q", d, id)
			}
			if r.District != d {
				return fmt.Errorf("region %q listed under %q but belongs to %q", id, d, r.District)
			}
		}
	}

	for _, r := range regions {
		if _, ok := listed[r.ID]; !ok {
			return fmt.Errorf("region %q missing from district membership lists", r.ID)
		}
	}

	return nil
}
