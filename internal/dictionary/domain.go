package dictionary

// DomainTerms — встроенный список терминов предметной области с ручными
// весами. Имеет высший приоритет при слиянии: объявления торговой площадки
// полны слов, которых в общеязыковом корпусе мало («куплю», «сдаю»,
// падежные формы «квартиру», бренды), а частотная модель должна предпочитать
// их похожим общим словам.
type DomainTerms struct{}

func (DomainTerms) Name() string { return "domain-terms" }

func (DomainTerms) Each(fn func(word string, weight float64)) error {
	for word, weight := range domainWeights {
		fn(word, weight)
	}
	return nil
}

var domainWeights = map[string]float64{
	// Действия пользователей
	"куплю": 60000, "продам": 55000, "сдаю": 50000, "сниму": 45000,
	"ищу": 70000, "отдам": 40000, "обменяю": 35000, "меняю": 30000,
	"покупаю": 25000, "продаю": 20000, "сдам": 30000,

	// Бренды техники
	"айфон": 45000, "iphone": 40000, "samsung": 30000, "xiaomi": 25000,
	"huawei": 20000, "macbook": 20000, "asus": 15000, "lenovo": 12000,

	// Автомобили
	"тойота": 15000, "toyota": 12000, "бмв": 10000, "bmw": 8000,
	"мерседес": 8000, "ауди": 7000, "киа": 8000, "хендай": 7000,

	// Недвижимость, падежные формы
	"квартиру": 60000, "квартира": 55000, "квартире": 50000, "квартиры": 45000,
	"комнату": 55000, "комната": 50000, "комнате": 45000, "комнаты": 40000,
	"дом": 45000, "дома": 40000, "доме": 35000, "студию": 25000, "студия": 20000,

	// Транспорт
	"машину": 50000, "машина": 45000, "машине": 40000, "машины": 35000,
	"авто": 35000, "автомобиль": 30000, "мотоцикл": 15000, "велосипед": 12000,

	// География
	"москве": 40000, "москва": 35000, "подмосковье": 30000,
	"спб": 20000, "питер": 15000, "петербург": 10000,

	// Состояние товара
	"новый": 40000, "новая": 35000, "новое": 30000, "новые": 25000,
	"хорошем": 30000, "отличном": 25000, "рабочем": 18000, "идеальном": 15000,

	// Предлоги и союзы
	"в": 120000, "на": 110000, "с": 100000, "для": 80000, "от": 70000,
	"до": 60000, "по": 55000, "за": 50000, "под": 40000, "без": 35000,
	"через": 30000, "при": 25000, "про": 20000, "или": 45000, "и": 150000,
	"а": 80000, "но": 40000, "что": 60000,

	// Цена и условия
	"недорого": 30000, "дешево": 25000, "бесплатно": 20000, "срочно": 25000,
	"торг": 18000, "цена": 25000, "рублей": 20000, "тысяч": 18000, "доставка": 22000,

	// Мебель и быт
	"диван": 35000, "кресло": 18000, "стол": 15000, "кровать": 22000,
	"шкаф": 18000, "холодильник": 18000, "телевизор": 20000, "компьютер": 15000,
	"стиральная": 15000, "микроволновка": 7000,

	// Сокращения
	"тел": 12000, "руб": 10000, "тыс": 8000, "шт": 6000,
	"кв": 8000, "м": 15000, "см": 6000, "км": 5000,
}
