package analysis

import "strings"

// Category is one named problem category with its keyword vocabulary.
type Category struct {
	Name     string
	Keywords []string
}

// Preset is an ordered list of categories selected for one product type.
// Order is significant: first-match classification stops at the first
// category whose keyword hits.
type Preset []Category

// presetRow binds product-name trigger terms to the preset used when any
// trigger is a substring of the lower-cased product name.
type presetRow struct {
	name     string
	triggers []string
	preset   Preset
}

// presetTable resolves a product name to a category preset. Rows are
// evaluated in priority order; the default preset is the final fallback.
type presetTable struct {
	rows        []presetRow
	defaultName string
	defaultSet  Preset
}

func (t presetTable) Select(productName string) Preset {
	_, preset := t.SelectNamed(productName)

	return preset
}

func (t presetTable) SelectNamed(productName string) (string, Preset) {
	name := strings.ToLower(productName)

	for _, row := range t.rows {
		for _, trigger := range row.triggers {
			if strings.Contains(name, trigger) {
				return row.name, row.preset
			}
		}
	}

	return t.defaultName, t.defaultSet
}

// Product domain labels.
const (
	DomainClothing    = "одежда"
	DomainElectronics = "электроника"
	DomainGeneric     = "default"
)

// basicPresets maps a product name to the coarse per-domain categories used
// by first-match classification.
var basicPresets = presetTable{
	rows: []presetRow{
		{
			name:     DomainClothing,
			triggers: []string{"одежда", "футболка", "джинсы", "платье", "брюки"},
			preset: Preset{
				{Name: "Размеры", Keywords: []string{"размер", "маленький", "большой", "не подошел", "размерная сетка"}},
				{Name: "Качество ткани", Keywords: []string{"ткань", "линяет", "растягивается", "рвется", "тонкая"}},
				{Name: "Швы", Keywords: []string{"швы", "по швам", "нитки", "расползается", "кривые швы"}},
			},
		},
		{
			name:     DomainElectronics,
			triggers: []string{"электроника", "зарядка", "кабель", "наушники", "триммер"},
			preset: Preset{
				{Name: "Поломка", Keywords: []string{"сломался", "не работает", "перегорел", "сгорел"}},
				{Name: "Батарея", Keywords: []string{"не заряжается", "батарея", "разряжается", "быстро садится"}},
				{Name: "Совместимость", Keywords: []string{"не подходит", "не совместим"}},
				{Name: "Качество сборки", Keywords: []string{"хрупкий", "дешевый", "пластик плохой"}},
			},
		},
	},
	defaultName: DomainGeneric,
	defaultSet: Preset{
		{Name: "Качество", Keywords: []string{"дешевый", "хрупкий", "некачественный", "плохой"}},
		{Name: "Функциональность", Keywords: []string{"не работает", "бракованный", "глючит"}},
		{Name: "Безопасность", Keywords: []string{"опасно", "острые края", "токсичный запах"}},
		{Name: "Упаковка", Keywords: []string{"плохая упаковка", "повреждена", "помят"}},
		{Name: "Запах", Keywords: []string{"запах", "воняет", "химический запах"}},
	},
}

// enhancedPreset is the fixed nine-category vocabulary used by the aggregate
// analysis regardless of product domain.
var enhancedPreset = Preset{
	{Name: "Размеры и габариты", Keywords: []string{"размер", "маленький", "большой", "не подошел", "размерная сетка", "велик", "мал", "не тот размер"}},
	{Name: "Качество материалов", Keywords: []string{"качество", "дешевый", "хрупкий", "некачественный", "плохой", "ужасный", "материал", "пластик"}},
	{Name: "Функциональность", Keywords: []string{"не работает", "бракованный", "глючит", "сломался", "поломка", "брак", "дефект", "не функционирует"}},
	{Name: "Энергопитание", Keywords: []string{"батарея", "не заряжается", "разряжается", "быстро садится", "заряд", "зарядка", "питание"}},
	{Name: "Сборка и швы", Keywords: []string{"швы", "по швам", "нитки", "расползается", "кривые швы", "обтрепался", "сборка", "развалился"}},
	{Name: "Запах и химия", Keywords: []string{"запах", "воняет", "химический запах", "пахнет", "вонь", "неприятный запах", "токсичный"}},
	{Name: "Логистика", Keywords: []string{"доставка", "упаковка", "помят", "поврежден", "курьер", "испорчен", "битый"}},
	{Name: "Соответствие описанию", Keywords: []string{"обман", "не соответствует", "другой товар", "подделка", "врут", "неправда", "не то"}},
	{Name: "Общее разочарование", Keywords: []string{"не советую", "ужас", "кошмар", "верните деньги", "жалею", "отвратительно", "разочарован"}},
}

// rankingPresets maps a product name to the finer-grained categories used by
// the top-10 criticality ranking.
var rankingPresets = presetTable{
	rows: []presetRow{
		{
			name:     "сушилки",
			triggers: []string{"сушилка", "центрифуга", "салат"},
			preset: Preset{
				{Name: "Проблемы сушки", Keywords: []string{"не сушит", "плохо сушит", "мокрый", "влажный", "не высыхает"}},
				{Name: "Механизм вращения", Keywords: []string{"не крутится", "слабо крутится", "заедает", "тормозит", "медленно"}},
				{Name: "Размер корзины", Keywords: []string{"маленькая", "большая", "не помещается", "мало места"}},
				{Name: "Качество сборки", Keywords: []string{"разваливается", "хлипкий", "неустойчивый", "шатается"}},
				{Name: "Материалы", Keywords: []string{"пластик", "тонкий", "хрупкий", "некачественный материал"}},
			},
		},
		{
			name:     "наушники",
			triggers: []string{"наушники", "bluetooth", "tws"},
			preset: Preset{
				{Name: "Качество звука", Keywords: []string{"тихий", "искажения", "басы", "звук плохой", "шипит"}},
				{Name: "Bluetooth связь", Keywords: []string{"не подключается", "отключается", "теряет связь", "bluetooth"}},
				{Name: "Время работы", Keywords: []string{"быстро разряжается", "не заряжается", "держит заряд", "батарея"}},
				{Name: "Комфорт", Keywords: []string{"выпадают", "неудобные", "давят", "болят уши"}},
				{Name: "Микрофон", Keywords: []string{"не слышно", "микрофон", "плохо слышат", "эхо"}},
			},
		},
		{
			name:     "зарядки",
			triggers: []string{"зарядка", "кабель", "провод"},
			preset: Preset{
				{Name: "Скорость зарядки", Keywords: []string{"медленно заряжает", "долго заряжается", "слабая зарядка"}},
				{Name: "Надежность", Keywords: []string{"ломается", "отходит", "не заряжает", "перестал работать"}},
				{Name: "Размеры", Keywords: []string{"короткий", "длинный", "не хватает длины"}},
				{Name: "Совместимость", Keywords: []string{"не подходит", "не совместим", "не работает с"}},
				{Name: "Качество", Keywords: []string{"тонкий", "дешевый", "рвется", "гнется"}},
			},
		},
	},
	defaultName: DomainGeneric,
	defaultSet: Preset{
		{Name: "Функциональность", Keywords: []string{"не работает", "бракованный", "глючит", "сломался"}},
		{Name: "Качество", Keywords: []string{"дешевый", "хрупкий", "некачественный", "плохой"}},
		{Name: "Размеры", Keywords: []string{"размер", "маленький", "большой", "не подходит"}},
		{Name: "Сборка", Keywords: []string{"разваливается", "неустойчивый", "хлипкий", "плохая сборка"}},
		{Name: "Материалы", Keywords: []string{"материал", "пластик", "металл", "ткань"}},
	},
}

// negativePhrases are generic dissatisfaction markers scored independently
// of any category.
var negativePhrases = []string{
	"плохо", "ужасно", "отвратительно", "разочарован", "жалею", "верните",
	"не рекомендую", "не советую", "бред", "фигня", "отстой", "развод",
	"кошмар", "ужас", "деньги на ветер", "обман", "подделка",
}

// BasicPreset returns the per-domain category preset and its domain label
// for a product name.
func BasicPreset(productName string) (string, Preset) {
	return basicPresets.SelectNamed(productName)
}

// CategoryFor returns the product domain label used in the aggregate
// analysis.
func CategoryFor(productName string) string {
	name, _ := basicPresets.SelectNamed(productName)

	return name
}

// Classify returns the first category (in preset order) whose keyword list
// has a substring match in the lower-cased body. It never fails; a review
// that matches nothing simply has no category.
func Classify(preset Preset, body string) (string, bool) {
	lower := strings.ToLower(body)

	for _, cat := range preset {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name, true
			}
		}
	}

	return "", false
}

// MatchAll returns every category of the preset with at least one keyword
// hit in the body, in preset order.
func MatchAll(preset Preset, body string) []string {
	lower := strings.ToLower(body)

	var matched []string

	for _, cat := range preset {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, cat.Name)

				break
			}
		}
	}

	return matched
}
