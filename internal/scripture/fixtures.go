package scripture

// Sample content ported from the original data set. Everything in this file
// is static reference data: the catalog hands out copies so callers can
// annotate their snapshot without touching these values.

var books = []Book{
	{"gen", "Génesis", "Gen", OldTestament, 50},
	{"exo", "Éxodo", "Exo", OldTestament, 40},
	{"lev", "Levítico", "Lev", OldTestament, 27},
	{"num", "Números", "Núm", OldTestament, 36},
	{"deu", "Deuteronomio", "Deu", OldTestament, 34},
	{"jos", "Josué", "Jos", OldTestament, 24},
	{"jue", "Jueces", "Jue", OldTestament, 21},
	{"isa", "Isaías", "Isa", OldTestament, 66},
	{"dan", "Daniel", "Dan", OldTestament, 12},
	{"sal", "Salmos", "Sal", OldTestament, 150},
	{"ecl", "Eclesiastés", "Ecl", OldTestament, 12},
	{"pro", "Proverbios", "Pro", OldTestament, 31},
	{"ose", "Oseas", "Ose", OldTestament, 14},
	{"mat", "Mateo", "Mat", NewTestament, 28},
	{"mar", "Marcos", "Mar", NewTestament, 16},
	{"luc", "Lucas", "Luc", NewTestament, 24},
	{"jua", "Juan", "Jua", NewTestament, 21},
	{"apo", "Apocalipsis", "Apo", NewTestament, 22},
}

var characters = []Character{
	{"David", "👑", "#a855f7"},
	{"Daniel", "🦁", "#a855f7"},
	{"Ester", "🌟", "#a855f7"},
	{"María", "🕊️", "#a855f7"},
	{"Pablo", "🎭", "#a855f7"},
	{"Pedro", "🎣", "#a855f7"},
	{"Juan", "📖", "#a855f7"},
	{"Moisés", "⚡", "#a855f7"},
	{"Abraham", "🌟", "#a855f7"},
	{"Sara", "👸", "#a855f7"},
}

// DynamicWords rotate on the auth screens every few seconds. Cosmetic only.
var DynamicWords = []string{"PAZ", "ESPERANZA", "AMOR", "FORTALEZA", "SABIDURÍA", "LUZ", "FE", "GOZO"}

var featuredVerses = []Verse{
	{
		ID:        "featured-1",
		Book:      "Génesis",
		Chapter:   6,
		Number:    4,
		Text:      "Había gigantes en la tierra en aquellos días, y también después que se llegaron los hijos de Dios a las hijas de los hombres, y les engendraron hijos; estos fueron los valientes que desde la antigüedad fueron varones de renombre.",
		Reference: "Génesis 6:4",
		Comments: []Comment{
			{
				ID:        "c1",
				User:      "Daniel",
				Content:   "Este versículo ha sido interpretado como evidencia de una mezcla entre lo divino y lo humano, lo cual desafía la separación clásica entre ambos planos.",
				Timestamp: "hace 3 horas",
				SubComments: []SubComment{
					{
						ID:        "sc1",
						User:      "David",
						Content:   "La existencia de 'gigantes' e 'hijos de Dios' sugiere una mitología más compleja dentro del relato bíblico.",
						Timestamp: "hace 2 horas",
					},
				},
			},
			{
				ID:        "c2",
				User:      "María",
				Content:   "Algunos creen que aquí se insinúa una intervención de seres celestiales en la historia humana.",
				Timestamp: "hace 5 horas",
			},
		},
		Proverbios: []Proverbio{
			{
				ID:         "p1",
				User:       "Moisés",
				Content:    "Lo que parece imposible para el hombre, es posible cuando lo divino interviene.",
				Background: "#667eea",
				TextColor:  "#ffffff",
				FontSize:   18,
				FontFamily: "serif",
				Timestamp:  "hace 1 día",
			},
		},
		Participations: 847,
		Format:         TextFormat{FontSize: 16},
	},
	{
		ID:        "featured-2",
		Book:      "Éxodo",
		Chapter:   3,
		Number:    14,
		Text:      "Y respondió Dios a Moisés: Yo soy el que soy. Y dijo: Así dirás a los hijos de Israel: Yo soy me envió a vosotros.",
		Reference: "Éxodo 3:14",
		Comments: []Comment{
			{
				ID:        "c3",
				User:      "Moisés",
				Content:   "Esta es una de las formulaciones más abstractas de Dios en toda la Biblia; define a Dios por su existencia en sí misma, sin atributos.",
				Timestamp: "hace 1 hora",
			},
			{
				ID:        "c4",
				User:      "Pablo",
				Content:   "Puede interpretarse como una afirmación de que Dios no puede ser reducido a nombres, categorías o imágenes.",
				Timestamp: "hace 4 horas",
				SubComments: []SubComment{
					{
						ID:        "sc4",
						User:      "Juan",
						Content:   "Exactamente, Pablo. Dios trasciende toda definición humana.",
						Timestamp: "hace 3 horas",
					},
				},
			},
		},
		Proverbios: []Proverbio{
			{
				ID:         "p2",
				User:       "Abraham",
				Content:    "Dios no necesita definirse, porque Él es la definición misma del ser.",
				Background: "#f093fb",
				TextColor:  "#ffffff",
				FontSize:   16,
				FontFamily: "sans-serif",
				Timestamp:  "hace 2 días",
			},
		},
		Participations: 1203,
		Format:         TextFormat{FontSize: 16},
	},
	{
		ID:        "featured-3",
		Book:      "Isaías",
		Chapter:   45,
		Number:    7,
		Text:      "Yo formo la luz y creo las tinieblas, hago la paz y creo el mal. Yo Jehová soy el que hago todo esto.",
		Reference: "Isaías 45:7",
		Comments: []Comment{
			{
				ID:        "c5",
				User:      "Juan",
				Content:   "Este versículo pone en jaque la idea de que el mal proviene exclusivamente de Satanás.",
				Timestamp: "hace 2 horas",
				SubComments: []SubComment{
					{
						ID:        "sc2",
						User:      "Pedro",
						Content:   "Reconocer que Dios 'crea el mal' implica una visión más amplia, incluso perturbadora, de su soberanía.",
						Timestamp: "hace 1 hora",
					},
				},
			},
		},
		Proverbios: []Proverbio{
			{
				ID:         "p3",
				User:       "Sara",
				Content:    "En la dualidad de la existencia, Dios es el arquitecto de ambos extremos.",
				Background: "#4facfe",
				TextColor:  "#ffffff",
				FontSize:   17,
				FontFamily: "serif",
				Timestamp:  "hace 3 días",
			},
		},
		Participations: 692,
		Format:         TextFormat{FontSize: 16},
	},
	{
		ID:        "featured-4",
		Book:      "Mateo",
		Chapter:   10,
		Number:    34,
		Text:      "No penséis que he venido para traer paz a la tierra; no he venido para traer paz, sino espada.",
		Reference: "Mateo 10:34",
		Comments: []Comment{
			{
				ID:        "c6",
				User:      "Ester",
				Content:   "Contradice la imagen clásica de Jesús como pacificador universal.",
				Timestamp: "hace 6 horas",
			},
			{
				ID:        "c7",
				User:      "Abraham",
				Content:   "Subraya el conflicto que genera seguir a Cristo, incluso dentro de las familias.",
				Timestamp: "hace 3 horas",
				SubComments: []SubComment{
					{
						ID:        "sc7",
						User:      "María",
						Content:   "A veces la verdad divide antes de unir. Es parte del proceso de transformación.",
						Timestamp: "hace 2 horas",
					},
				},
			},
		},
		Proverbios: []Proverbio{
			{
				ID:         "p4",
				User:       "Daniel",
				Content:    "La verdad no siempre trae paz; a veces trae la espada que corta las mentiras.",
				Background: "#fa709a",
				TextColor:  "#ffffff",
				FontSize:   16,
				FontFamily: "sans-serif",
				Timestamp:  "hace 4 días",
			},
		},
		Participations: 934,
		Format:         TextFormat{FontSize: 16},
	},
}

// principioVerses is the fixed result set every search returns. Each verse
// is already known to contain the word "principio"; no real matching
// happens anywhere.
var principioVerses = []Verse{
	{
		ID: "1", Book: "Génesis", Chapter: 1, Number: 1,
		Text:      "En el principio creó Dios los cielos y la tierra.",
		Reference: "Génesis 1:1", Participations: 1024, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "2", Book: "Génesis", Chapter: 41, Number: 21,
		Text:      "y éstas entraban en sus entrañas, mas no se conocía que hubiesen entrado, porque la apariencia de las flacas era aún mala, como al principio. Y yo desperté.",
		Reference: "Génesis 41:21", Participations: 456, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "3", Book: "Génesis", Chapter: 43, Number: 20,
		Text:      "Y dijeron: Ay, señor nuestro, nosotros en realidad de verdad descendimos al principio a comprar alimentos.",
		Reference: "Génesis 43:20", Participations: 321, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "4", Book: "Génesis", Chapter: 49, Number: 3,
		Text:      "Rubén, tú eres mi primogénito, mi fortaleza, y el principio de mi vigor; Principal en dignidad, principal en poder.",
		Reference: "Génesis 49:3", Participations: 567, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "5", Book: "Éxodo", Chapter: 12, Number: 2,
		Text:      "Este mes os será principio de los meses; para vosotros será éste el primero en los meses del año.",
		Reference: "Éxodo 12:2", Participations: 789, Format: TextFormat{FontSize: 16},
	},
}

var sampleBookVerses = []Verse{
	{
		ID: "sample-1", Book: "Génesis", Chapter: 1, Number: 1,
		Text:      "En el principio creó Dios los cielos y la tierra.",
		Reference: "Génesis 1:1", Participations: 1024, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "sample-2", Book: "Génesis", Chapter: 1, Number: 2,
		Text:      "Y la tierra estaba desordenada y vacía, y las tinieblas estaban sobre la faz del abismo, y el Espíritu de Dios se movía sobre la faz de las aguas.",
		Reference: "Génesis 1:2", Participations: 856, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "sample-3", Book: "Génesis", Chapter: 1, Number: 3,
		Text:      "Y dijo Dios: Sea la luz; y fue la luz.",
		Reference: "Génesis 1:3", Participations: 1205, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "sample-4", Book: "Génesis", Chapter: 1, Number: 4,
		Text:      "Y vio Dios que la luz era buena; y separó Dios la luz de las tinieblas.",
		Reference: "Génesis 1:4", Participations: 743, Format: TextFormat{FontSize: 16},
	},
	{
		ID: "sample-5", Book: "Génesis", Chapter: 1, Number: 5,
		Text:      "Y llamó Dios a la luz Día, y a las tinieblas llamó Noche. Y fue la tarde y la mañana un día.",
		Reference: "Génesis 1:5", Participations: 692, Format: TextFormat{FontSize: 16},
	},
}

// translationVerse is Génesis 1:1 with its full Hebrew breakdown, shown on
// the translation page.
var translationVerse = Verse{
	ID:              "translation-example",
	Book:            "Génesis",
	Chapter:         1,
	Number:          1,
	Text:            "En el principio creó Dios los cielos y la tierra.",
	Reference:       "Génesis 1:1",
	HebrewText:      "בְּרֵאשִׁית בָּרָא אֱלֹהִים אֵת הַשָּׁמַיִם וְאֵת הָאָרֶץ",
	Transliteration: "Bereshit bara Elohim et hashamayim ve'et ha'aretz.",
	Gematria: []WordGematria{
		{
			Spanish:         "principio",
			Hebrew:          "בְּרֵאשִׁית",
			Transliteration: "Bereshit",
			Value:           913,
			Meaning:         "En el comienzo absoluto, el punto de partida de toda la creación. Esta palabra implica no solo un inicio temporal, sino el fundamento mismo de la existencia.",
			LetterValues: []LetterValue{
				{"ב", 2}, {"ר", 200}, {"א", 1}, {"ש", 300}, {"י", 10}, {"ת", 400},
			},
		},
		{
			Spanish:         "creó",
			Hebrew:          "בָּרָא",
			Transliteration: "bara",
			Value:           203,
			Meaning:         "Crear de la nada, acto divino de creación",
			LetterValues:    []LetterValue{{"ב", 2}, {"ר", 200}, {"א", 1}},
		},
		{
			Spanish:         "Dios",
			Hebrew:          "אֱלֹהִים",
			Transliteration: "Elohim",
			Value:           86,
			Meaning:         "Nombre plural de Dios, indica majestad y poder",
			LetterValues:    []LetterValue{{"א", 1}, {"ל", 30}, {"ה", 5}, {"י", 10}, {"ם", 40}},
		},
	},
	Participations: 2847,
	Format:         TextFormat{FontSize: 18, Italic: true},
}
