package assessment

// Question types understood by the client.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeFillBlanks     = "fill_blanks"
)

// BankQuestion is a question compiled into the client for offline
// diagnostics.
type BankQuestion struct {
	ID         string
	Type       string
	Difficulty int // 1 (basic) to 5 (advanced)
	Prompt     string
	Options    []string // multiple_choice only

	// CorrectIndex is the index of the right option. For true_false, 0
	// means true and 1 means false.
	CorrectIndex int
	// CorrectText is the expected word for fill_blanks.
	CorrectText string

	Explanation string
	BloomLevel  int
}

// LenguaBank is the offline Lengua y Literatura diagnostic (1° Medio),
// ordered from basic to expert.
var LenguaBank = []BankQuestion{
	{
		ID:           "leng_diag_01",
		Type:         TypeMultipleChoice,
		Difficulty:   1,
		Prompt:       "¿Cuál de las siguientes palabras es un sustantivo?",
		Options:      []string{"Correr", "Casa", "Rápido", "Muy"},
		CorrectIndex: 1,
		Explanation:  `Un sustantivo es una palabra que nombra personas, animales, cosas o ideas. "Casa" es un sustantivo.`,
		BloomLevel:   1,
	},
	{
		ID:           "leng_diag_02",
		Type:         TypeTrueFalse,
		Difficulty:   1,
		Prompt:       "Los adjetivos son palabras que describen o califican a los sustantivos.",
		CorrectIndex: 0,
		Explanation:  "Correcto. Los adjetivos acompañan al sustantivo para expresar cualidades o características.",
		BloomLevel:   1,
	},
	{
		ID:           "leng_diag_03",
		Type:         TypeMultipleChoice,
		Difficulty:   2,
		Prompt:       `Lee el siguiente fragmento: "El sol brillaba intensamente mientras los niños jugaban en el parque". ¿Cuál es el sujeto de la oración?`,
		Options:      []string{"El sol", "Los niños", "El parque", "El día"},
		CorrectIndex: 0,
		Explanation:  `El sujeto es "el sol", ya que es quien realiza la acción de brillar.`,
		BloomLevel:   2,
	},
	{
		ID:         "leng_diag_04",
		Type:       TypeMultipleChoice,
		Difficulty: 2,
		Prompt:     `¿Qué tipo de narrador se utiliza en este fragmento? "Yo caminaba por la calle cuando vi a mi mejor amigo".`,
		Options: []string{
			"Narrador omnisciente",
			"Narrador protagonista (primera persona)",
			"Narrador testigo",
			"Narrador en tercera persona",
		},
		CorrectIndex: 1,
		Explanation:  `Es un narrador protagonista porque cuenta la historia en primera persona ("yo") y es parte de los acontecimientos.`,
		BloomLevel:   2,
	},
	{
		ID:          "leng_diag_05",
		Type:        TypeFillBlanks,
		Difficulty:  3,
		Prompt:      "Una ___1___ es una figura literaria que consiste en atribuir características humanas a objetos inanimados o animales.",
		CorrectText: "personificación",
		Explanation: "La personificación (o prosopopeya) es una figura literaria que da cualidades humanas a objetos o seres no humanos.",
		BloomLevel:  2,
	},
	{
		ID:         "leng_diag_06",
		Type:       TypeMultipleChoice,
		Difficulty: 3,
		Prompt:     "En un texto narrativo, el clímax es:",
		Options: []string{
			"La presentación de los personajes",
			"El momento de mayor tensión o conflicto",
			"La conclusión de la historia",
			"El contexto donde ocurre la historia",
		},
		CorrectIndex: 1,
		Explanation:  "El clímax es el punto de mayor tensión en la narración, donde el conflicto alcanza su máxima intensidad.",
		BloomLevel:   3,
	},
	{
		ID:         "leng_diag_07",
		Type:       TypeMultipleChoice,
		Difficulty: 3,
		Prompt:     "¿Cuál es la función principal de un texto argumentativo?",
		Options: []string{
			"Narrar una historia ficticia",
			"Describir un objeto o persona",
			"Convencer o persuadir al lector sobre un punto de vista",
			"Explicar cómo hacer algo paso a paso",
		},
		CorrectIndex: 2,
		Explanation:  "Los textos argumentativos buscan convencer al lector mediante razones y evidencias que apoyen una tesis.",
		BloomLevel:   3,
	},
	{
		ID:           "leng_diag_08",
		Type:         TypeTrueFalse,
		Difficulty:   4,
		Prompt:       `En una metáfora, se comparan dos elementos utilizando las palabras "como" o "tal como".`,
		CorrectIndex: 1,
		Explanation:  `Falso. Esa es la definición de comparación o símil. La metáfora identifica directamente dos elementos sin usar "como".`,
		BloomLevel:   2,
	},
	{
		ID:           "leng_diag_09",
		Type:         TypeMultipleChoice,
		Difficulty:   4,
		Prompt:       `Lee el siguiente verso: "Volverán las oscuras golondrinas / en tu balcón sus nidos a colgar". ¿Qué figura literaria predomina?`,
		Options:      []string{"Hipérbole", "Personificación", "Metáfora", "Anáfora"},
		CorrectIndex: 1,
		Explanation:  "Hay personificación al atribuir acciones humanas (colgar) a las golondrinas de manera intencional.",
		BloomLevel:   4,
	},
	{
		ID:         "leng_diag_10",
		Type:       TypeMultipleChoice,
		Difficulty: 4,
		Prompt:     `En el análisis de un texto literario, ¿qué significa el concepto de "intertextualidad"?`,
		Options: []string{
			"El uso de diferentes tipos de texto en una misma obra",
			"La relación y conexión entre diferentes textos literarios",
			"La estructura interna del texto",
			"El contexto histórico de producción del texto",
		},
		CorrectIndex: 1,
		Explanation:  "La intertextualidad se refiere a las relaciones que un texto establece con otros textos, ya sea mediante citas, alusiones o referencias.",
		BloomLevel:   4,
	},
	{
		ID:          "leng_diag_11",
		Type:        TypeFillBlanks,
		Difficulty:  5,
		Prompt:      "El ___1___ es el tiempo verbal que se utiliza para narrar acciones que ya ocurrieron y están completamente finalizadas.",
		CorrectText: "pretérito",
		Explanation: `El pretérito (o pretérito perfecto simple) indica acciones pasadas y acabadas. Ejemplo: "Ella llegó ayer".`,
		BloomLevel:  3,
	},
	{
		ID:         "leng_diag_12",
		Type:       TypeMultipleChoice,
		Difficulty: 5,
		Prompt:     "En un ensayo académico, la estructura básica incluye (en orden):",
		Options: []string{
			"Desarrollo - Introducción - Conclusión",
			"Introducción - Desarrollo - Conclusión",
			"Conclusión - Introducción - Desarrollo",
			"Introducción - Conclusión - Desarrollo",
		},
		CorrectIndex: 1,
		Explanation:  "La estructura clásica del ensayo es: Introducción (presentación del tema), Desarrollo (argumentación) y Conclusión (síntesis).",
		BloomLevel:   5,
	},
}
