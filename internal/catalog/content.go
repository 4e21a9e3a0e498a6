// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

var siteMeta = SiteMeta{
	Title:        "City Green Hub",
	Tagline:      "Практические решения по развитию зеленой инфраструктуры города",
	ContactEmail: "contact@citygreenhub.example",
	ContactPhone: "+7 (495) 000-00-00",
	Address:      "Москва, ул. Академическая, 10",
	SupportHours: "Пн-Пт с 9:00 до 18:00",
}

var banner = Banner{
	Headline: "Экосистемные сервисы для устойчивых городов",
	Subtext: "Мы помогаем девелоперам, муниципалитетам и сообществам внедрять зелёные решения" +
		" — от озеленения дворов до управления дождевыми водами.",
}

// PracticesSection is the name of the section shown on /practices.
const PracticesSection = "Практики"

// NewsSection labels news hits in search results.
const NewsSection = "Новости"

var sections = []Section{
	{
		Name: "Аналитика",
		Articles: []Article{
			{
				Slug:    "зелёные-крыши",
				Title:   "Зелёные крыши как элемент климатической адаптации",
				Excerpt: "Что нужно учесть при проектировании зелёной кровли и как оценить её эффективность.",
				Content: "Зелёные крыши снижают тепловую нагрузку, повышают биоразнообразие и задерживают дождевые" +
					" воды. При выборе конструкции важно учитывать несущую способность здания, подбор субстрата" +
					" и схемы ухода. Дополнительный эффект дают модули с засухоустойчивыми растениями.",
			},
			{
				Slug:    "городские-деревья",
				Title:   "Как подобрать деревья для плотной городской застройки",
				Excerpt: "Подбор пород, расчёт лунок и защитные меры против уплотнения почв.",
				Content: "Городские деревья сталкиваются с дефицитом влаги и загрязнением. При посадке важно" +
					" проектировать аэрационные каналы, использовать структурные грунты и предусматривать" +
					" защиту корневой зоны от техники. Породы нужно подбирать по устойчивости к засолению" +
					" и тепловым островам.",
			},
			{
				Slug:    "реабилитация-рек",
				Title:   "Реабилитация малых рек: шаги для муниципалитетов",
				Excerpt: "Набор быстрых мер, которые можно запустить в течение одного сезона.",
				Content: "Базовый пакет работ включает очистку русел от мусора, восстановление прибрежной" +
					" растительности и внедрение природо-ориентированных береговых укреплений. Для" +
					" устойчивого результата необходим мониторинг качества воды и участие местных жителей" +
					" через волонтёрские программы.",
			},
			{
				Slug:    "сбор-дождевой-воды",
				Title:   "Сбор дождевой воды для микрорайонов",
				Excerpt: "Малые системы задержания стока снижают нагрузку на ливнёвку и улучшают микроклимат.",
				Content: "Дождевые сады, биофильтры и перехватывающие канавы позволяют задержать часть осадков" +
					" на месте. Для расчётов используют коэффициент водонепроницаемости покрытия и" +
					" среднегодовой объём осадков. Важно предусмотреть обслуживание фильтрующих слоёв" +
					" и безопасный перепуск в сильные ливни.",
			},
			{
				Slug:    "общественное-участие",
				Title:   "Как вовлекать жителей в проекты озеленения",
				Excerpt: "Рабочие механики соучастного проектирования и прозрачной отчётности.",
				Content: "Эффективное вовлечение строится на ранних интервью с сообществами, визуализациях" +
					" решений и регулярных отчётных встречах. Цифровая карта инициатив и открытые данные" +
					" о бюджете повышают доверие. Для поддержки ухода за зелёными объектами подходят" +
					" микро-гранты и календарь совместных работ.",
			},
		},
	},
	{
		Name: PracticesSection,
		Articles: []Article{
			{
				Slug:    "пилотные-дворы",
				Title:   "Пилотные дворы с устойчивым озеленением",
				Excerpt: "Как запускать небольшие демонстрационные участки и масштабировать решения.",
				Content: "Пилоты помогают протестировать новые материалы, схемы ухода и взаимодействие с" +
					" подрядчиками. Важно фиксировать метрики: снижение пыли, уровень шума, отзывы жителей." +
					" Успешные схемы масштабируются через типовые проектные решения и обученные команды.",
			},
			{
				Slug:    "пермакультура",
				Title:   "Пермакультурные подходы в городской среде",
				Excerpt: "Сочетание съедобных ландшафтов и декоративных зон без лишнего ухода.",
				Content: "Пермакультурные принципы позволяют создать самоподдерживающиеся посадки с" +
					" минимальными затратами. Мульчирование, компостирование на месте и подбор растений" +
					" по ярусам сокращают полив и борьбу с сорняками.",
			},
			{
				Slug:    "звукоизоляция-зеленью",
				Title:   "Шумозащитные посадки вдоль магистралей",
				Excerpt: "Грамотно подобранные полосы зелёных насаждений снижают шум на 5-7 дБ.",
				Content: "Комбинация кустарников и деревьев с плотной кроной снижает шумовое воздействие." +
					" Эффективны полосы шириной от 15 метров с чередованием вечнозелёных и лиственных" +
					" пород. Регулярная санитарная обрезка поддерживает плотность кроны.",
			},
			{
				Slug:    "инфраструктура-водоотведения",
				Title:   "Природные решения для водоотведения",
				Excerpt: "Биоинженерные каналы и фильтрующие ландшафты против перегрузки ливнёвки.",
				Content: "Гибридные системы сочетают открытые каналы с фильтрующими субстратами и" +
					" водопроницаемыми покрытиями. Они снижают расходы на коллекторы и улучшают" +
					" качество воды.",
			},
			{
				Slug:    "мониторинг-зелени",
				Title:   "Цифровой мониторинг зелёных насаждений",
				Excerpt: "Дроны, датчики влажности и публичные панели для контроля состояния зелёных зон.",
				Content: "Системы мониторинга позволяют планировать уход, прогнозировать риски и вовлекать" +
					" жителей. Важно обеспечить защиту данных, интеграцию с городскими ГИС и удобный" +
					" интерфейс для подрядчиков.",
			},
		},
	},
}

var resources = []Resource{
	{
		Name:        "Методичка по зелёным крышам",
		Description: "Пошаговые рекомендации по проектированию и сопровождению зелёных кровель.",
		Link:        "https://example.com/green-roof-guide",
	},
	{
		Name:        "Чек-лист по биофильтрам",
		Description: "Контрольные точки для приёмки объектов водоотведения.",
		Link:        "https://example.com/biofilter-checklist",
	},
	{
		Name:        "Шаблон карты стейкхолдеров",
		Description: "Помогает фиксировать роли участников проектов озеленения.",
		Link:        "https://example.com/stakeholder-map",
	},
	{
		Name:        "Калькулятор углеродного эффекта",
		Description: "Базовые расчёты по поглощению CO2 зелёными насаждениями.",
		Link:        "https://example.com/carbon-calculator",
	},
	{
		Name:        "Дорожная карта внедрения",
		Description: "Последовательность шагов для запуска программы зелёной инфраструктуры в городе.",
		Link:        "https://example.com/roadmap",
	},
}

var navLinks = []Link{
	{Label: "Главная", Path: "/"},
	{Label: "О проекте", Path: "/about"},
	{Label: "Решения", Path: "/services"},
	{Label: "Статьи", Path: "/articles"},
	{Label: "Практики", Path: "/practices"},
	{Label: "Ресурсы", Path: "/resources"},
	{Label: "Новости", Path: "/news"},
	{Label: "Контакты", Path: "/contact"},
}

// sitemap extends the navigation with the utility pages.
var sitemapExtra = []Link{
	{Label: "Поиск", Path: "/search"},
	{Label: "Вход", Path: "/login"},
	{Label: "Регистрация", Path: "/register"},
}
