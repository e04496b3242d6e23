package fallback

// Topic is one offline knowledge entry. Topics are kept in ordered slices so
// keyword matching has a fixed priority: the first topic whose keyword appears
// in the prompt wins.
type Topic struct {
	Title    string
	Keywords []string
	Content  string
}

// knowledgeBase holds canned explanatory text per avatar, used when the
// language model is unavailable. The final entry of each concern is served by
// defaultContent when no topic keyword matches.
var knowledgeBase = map[string][]Topic{
	"biology-teacher": {
		{
			Title:    "The Human Brain",
			Keywords: []string{"brain", "nervous system", "neurons", "cerebrum", "cerebellum", "brainstem"},
			Content: `The brain is the command center of the human body, controlling all our thoughts, movements, and bodily functions. It's made up of billions of nerve cells called neurons that communicate through electrical and chemical signals.

**Key Facts:**
• Weight: About 3 pounds (1.4 kg)
• Neurons: Approximately 86 billion
• Energy Usage: 20% of body's total energy
• Functions: Memory, learning, emotions, behavior control

**Main Parts:**
1. **Cerebrum** - Thinking, voluntary actions, memory
2. **Cerebellum** - Balance, coordination, fine motor skills
3. **Brainstem** - Basic life functions (breathing, heart rate)`,
		},
		{
			Title:    "Cells: Building Blocks of Life",
			Keywords: []string{"cell", "cells", "nucleus", "membrane", "cytoplasm", "organelles"},
			Content: `Cells are the basic building blocks of all living things. They are microscopic structures that carry out all the functions necessary for life.

**Cell Structure:**
1. **Cell Membrane** - Protects and controls what enters/exits
2. **Nucleus** - Contains genetic material (DNA)
3. **Cytoplasm** - Gel-like substance where reactions occur
4. **Organelles** - Specialized structures for specific tasks

**Types of Cells:**
• **Nerve cells** - Transmit electrical signals
• **Muscle cells** - Enable movement
• **Blood cells** - Transport oxygen and nutrients
• **Skin cells** - Provide protection`,
		},
		{
			Title:    "The Human Heart",
			Keywords: []string{"heart", "blood", "circulation", "pump", "chambers", "valves"},
			Content: `The heart is a muscular organ that pumps blood throughout the body, delivering oxygen and nutrients to all cells.

**Heart Facts:**
• Size: About the size of your fist
• Beats: 60-100 times per minute at rest
• Daily beats: Over 100,000 times

**Blood Flow:**
• Deoxygenated blood → Right side → Lungs
• Oxygenated blood → Left side → Body`,
		},
	},
	"physics-teacher": {
		{
			Title:    "Motion and Forces",
			Keywords: []string{"motion", "movement", "speed", "velocity", "acceleration", "force", "newton"},
			Content: `Motion is the change in position of an object over time. It's one of the fundamental concepts in physics that helps us understand how things move.

**Key Concepts:**
• **Speed** - How fast something moves (distance/time)
• **Velocity** - Speed with direction
• **Acceleration** - How quickly velocity changes
• **Force** - What causes motion to change

**Newton's Laws of Motion:**
1. **First Law** - Objects stay at rest or in motion unless acted upon by a force
2. **Second Law** - Force = mass × acceleration
3. **Third Law** - For every action, there's an equal and opposite reaction`,
		},
		{
			Title:    "Forms of Energy",
			Keywords: []string{"energy", "kinetic", "potential", "thermal", "electrical", "chemical"},
			Content: `Energy is the ability to do work or cause change. It's a fundamental concept in physics that comes in many forms.

**Types of Energy:**
1. **Kinetic Energy** - Energy of motion
2. **Potential Energy** - Stored energy
3. **Thermal Energy** - Heat energy
4. **Electrical Energy** - Energy from electric charges
5. **Chemical Energy** - Energy stored in chemical bonds

**Energy Conservation:**
• Energy cannot be created or destroyed
• It only changes from one form to another`,
		},
		{
			Title:    "Light and Optics",
			Keywords: []string{"light", "optics", "reflection", "refraction", "color", "wavelength"},
			Content: `Light is a form of electromagnetic radiation that we can see. It travels in straight lines and can be reflected, refracted, and absorbed.

**Light Behavior:**
1. **Reflection** - Light bounces off surfaces
2. **Refraction** - Light bends when passing through different materials
3. **Absorption** - Light is absorbed by materials
4. **Diffraction** - Light bends around obstacles`,
		},
	},
	"chemistry-teacher": {
		{
			Title:    "Acids and Bases",
			Keywords: []string{"acid", "acids", "base", "bases", "ph", "hydrogen", "hydroxide"},
			Content: `Acids and bases are important chemical compounds that have opposite properties and are found everywhere in our daily lives.

**What are Acids?**
• Substances that release hydrogen ions (H+) in water
• Taste sour and turn blue litmus paper red

**What are Bases?**
• Substances that release hydroxide ions (OH-) in water
• Taste bitter, feel slippery, turn red litmus paper blue

**pH Scale:**
• 0-6: Acidic
• 7: Neutral (water)
• 8-14: Basic`,
		},
		{
			Title:    "Chemical Reactions",
			Keywords: []string{"reaction", "chemical", "reactants", "products", "bonds", "synthesis"},
			Content: `A chemical reaction is a process where substances (reactants) transform into new substances (products). It involves breaking and forming chemical bonds.

**Types of Chemical Reactions:**
1. **Synthesis** - Two or more substances combine
2. **Decomposition** - One substance breaks down into simpler substances
3. **Single Replacement** - One element replaces another
4. **Double Replacement** - Two elements switch places
5. **Combustion** - Substance reacts with oxygen, producing heat and light`,
		},
		{
			Title:    "Chemical Elements",
			Keywords: []string{"element", "elements", "atom", "atoms", "periodic table", "metal"},
			Content: `Elements are pure substances made of only one type of atom. They are the building blocks of all matter in the universe.

**Element Facts:**
• There are 118 known elements
• Elements are organized in the periodic table
• Each element has unique properties
• Elements can combine to form compounds`,
		},
	},
	"mathematics-teacher": {
		{
			Title:    "Algebra",
			Keywords: []string{"algebra", "equation", "variable", "polynomial"},
			Content: `Algebra is a branch of mathematics that uses letters and symbols to represent numbers and quantities in formulas and equations.

Key concepts in algebra:
• Variables - letters that represent unknown values
• Equations - mathematical statements with equals signs
• Solving - finding the value of variables
• Functions - relationships between variables`,
		},
		{
			Title:    "Geometry",
			Keywords: []string{"geometry", "shape", "angle", "triangle", "circle"},
			Content: `Geometry is the study of shapes, sizes, positions, and dimensions of objects. It helps us understand the world around us.

Key concepts in geometry:
• Points, lines, and planes
• Angles and measurements
• Triangles, circles, and polygons
• Area, perimeter, volume, and surface area`,
		},
	},
	"english-teacher": {
		{
			Title:    "Grammar",
			Keywords: []string{"grammar", "tense", "verb", "noun", "punctuation"},
			Content: `Grammar is the set of rules that govern how words are used to form sentences. It helps us communicate clearly and effectively.

Key grammar concepts include:
• Parts of speech (nouns, verbs, adjectives)
• Sentence structure and punctuation
• Subject-verb agreement
• Tenses and verb forms`,
		},
		{
			Title:    "Writing",
			Keywords: []string{"writing", "essay", "paragraph", "composition"},
			Content: `Writing is the process of creating text to communicate ideas, stories, or information. Good writing is clear, organized, and engaging.

Key writing skills include:
• Planning and organization
• Clear and concise language
• Proper grammar and punctuation
• Revising and editing`,
		},
	},
}

// defaultContent is the per-avatar canned answer used when no topic matches.
var defaultContent = map[string]string{
	"biology-teacher": `Biology is the study of living organisms and their interactions with each other and their environment. It covers everything from tiny cells to complex ecosystems.

**Key Areas in Biology:**
1. **Cell Biology** - Studying the basic units of life
2. **Genetics** - Understanding how traits are inherited
3. **Ecology** - Examining how organisms interact with their environment
4. **Evolution** - Studying how species change over time
5. **Human Anatomy** - Understanding the human body structure`,

	"physics-teacher": `Physics is the study of matter, energy, and their interactions. It helps us understand how the universe works at both the smallest and largest scales.

**Main Branches of Physics:**
1. **Mechanics** - Motion, forces, and energy
2. **Thermodynamics** - Heat and energy transfer
3. **Electromagnetism** - Electricity and magnetism
4. **Optics** - Light and vision
5. **Quantum Physics** - Behavior of very small particles`,

	"chemistry-teacher": `Chemistry is the study of matter, its properties, and the changes it undergoes. It's often called the "central science" because it connects physics and biology.

**Key Areas in Chemistry:**
1. **Atomic Structure** - Understanding atoms and molecules
2. **Chemical Bonding** - How atoms connect to form compounds
3. **Reactions** - How substances change into new substances
4. **Solutions** - Mixtures and concentrations
5. **Organic Chemistry** - Carbon-based compounds`,

	"mathematics-teacher": `Mathematics is the study of numbers, quantities, shapes, and patterns. It's a fundamental tool used in science, engineering, and everyday life.

Key areas in mathematics include:
• Arithmetic - basic operations with numbers
• Algebra - using letters and symbols
• Geometry - studying shapes and space
• Calculus - rates of change and accumulation
• Statistics - collecting and analyzing data`,

	"english-teacher": `English is a rich and complex language used for communication, literature, and learning. It has evolved over centuries and is now one of the most widely spoken languages.

Key areas in English include:
• Grammar - rules for using words correctly
• Vocabulary - building word knowledge
• Reading comprehension - understanding written text
• Writing - expressing ideas clearly
• Literature - appreciating written works`,
}

// fallbackDefaultAvatar anchors lookups for avatars without their own
// knowledge table or suggestion lists.
const (
	fallbackDefaultAvatar   = "biology-teacher"
	suggestionDefaultAvatar = "computer-teacher"
)
