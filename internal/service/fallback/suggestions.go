package fallback

import "github.com/sganguly/teacher-avatars/backend/internal/model/chat"

// fallbackArticles are the static per-avatar reading suggestions served when
// the model reply carried none.
var fallbackArticles = map[string][]chat.Article{
	"computer-teacher": {
		{Title: "Programming Fundamentals", Description: "Essential concepts for beginners", URL: "https://www.w3schools.com/programming/"},
		{Title: "Web Development Guide", Description: "Learn HTML, CSS, and JavaScript", URL: "https://developer.mozilla.org/en-US/docs/Web"},
		{Title: "Computer Science Basics", Description: "Core concepts and principles", URL: "https://www.khanacademy.org/computing"},
	},
	"mathematics-teacher": {
		{Title: "Math Fundamentals", Description: "Basic mathematical concepts", URL: "https://www.khanacademy.org/math"},
		{Title: "Algebra Basics", Description: "Introduction to algebraic concepts", URL: "https://www.mathsisfun.com/algebra/"},
		{Title: "Geometry Concepts", Description: "Understanding shapes and space", URL: "https://www.mathsisfun.com/geometry/"},
	},
	"english-teacher": {
		{Title: "English Grammar", Description: "Essential grammar rules", URL: "https://www.grammarly.com/blog/"},
		{Title: "Writing Skills", Description: "Improve your writing", URL: "https://owl.purdue.edu/owl/"},
		{Title: "Literature Guide", Description: "Understanding literary works", URL: "https://www.sparknotes.com/"},
	},
	"biology-teacher": {
		{Title: "Biology Fundamentals", Description: "Essential life science concepts", URL: "https://www.khanacademy.org/science/biology"},
		{Title: "Human Anatomy", Description: "Learn about the human body", URL: "https://www.innerbody.com/"},
		{Title: "Cell Biology", Description: "Understanding cellular processes", URL: "https://www.khanacademy.org/science/biology/cellular-molecular-biology"},
	},
	"physics-teacher": {
		{Title: "Physics Fundamentals", Description: "Basic physics concepts", URL: "https://www.khanacademy.org/science/physics"},
		{Title: "Mechanics", Description: "Motion, forces, and energy", URL: "https://www.physicsclassroom.com/"},
		{Title: "Electricity & Magnetism", Description: "Electromagnetic concepts", URL: "https://www.khanacademy.org/science/physics/magnetic-forces-and-magnetic-fields"},
	},
	"chemistry-teacher": {
		{Title: "Chemistry Basics", Description: "Fundamental chemical concepts", URL: "https://www.khanacademy.org/science/chemistry"},
		{Title: "Periodic Table", Description: "Understanding elements", URL: "https://www.rsc.org/periodic-table"},
		{Title: "Chemical Reactions", Description: "Types of chemical changes", URL: "https://www.khanacademy.org/science/chemistry/chemical-reactions-stoichiometry"},
	},
	"history-teacher": {
		{Title: "World History", Description: "Major historical events", URL: "https://www.khanacademy.org/humanities/world-history"},
		{Title: "Ancient Civilizations", Description: "Early human societies", URL: "https://www.khanacademy.org/humanities/ancient-art-civilizations"},
		{Title: "Modern History", Description: "Recent historical developments", URL: "https://www.khanacademy.org/humanities/us-history"},
	},
	"geography-teacher": {
		{Title: "Physical Geography", Description: "Earth's natural features", URL: "https://www.khanacademy.org/humanities/geography"},
		{Title: "World Maps", Description: "Understanding global geography", URL: "https://www.nationalgeographic.org/maps/"},
		{Title: "Climate & Weather", Description: "Atmospheric conditions", URL: "https://www.khanacademy.org/science/weather-and-climate"},
	},
	"hindi-teacher": {
		{Title: "Hindi Grammar", Description: "हिंदी व्याकरण के नियम", URL: "https://www.hindigranth.com/"},
		{Title: "Hindi Literature", Description: "हिंदी साहित्य का अध्ययन", URL: "https://www.hindisahitya.com/"},
		{Title: "Hindi Writing", Description: "हिंदी लेखन कौशल", URL: "https://www.hindigranth.com/"},
	},
	"doctor": {
		{Title: "Health Basics", Description: "Fundamental health concepts", URL: "https://www.mayoclinic.org/healthy-lifestyle"},
		{Title: "Nutrition Guide", Description: "Healthy eating principles", URL: "https://www.nutrition.gov/"},
		{Title: "Exercise & Fitness", Description: "Physical activity guidelines", URL: "https://www.cdc.gov/physicalactivity/index.html"},
	},
	"engineer": {
		{Title: "Engineering Basics", Description: "Fundamental engineering concepts", URL: "https://www.khanacademy.org/science/engineering"},
		{Title: "Mechanical Engineering", Description: "Machines and mechanisms", URL: "https://www.khanacademy.org/science/mechanical-engineering"},
		{Title: "Electrical Engineering", Description: "Circuits and electronics", URL: "https://www.khanacademy.org/science/electrical-engineering"},
	},
	"lawyer": {
		{Title: "Legal Basics", Description: "Fundamental legal concepts", URL: "https://www.law.cornell.edu/"},
		{Title: "Constitutional Law", Description: "Understanding the constitution", URL: "https://constitutioncenter.org/"},
		{Title: "Civil Rights", Description: "Individual rights and freedoms", URL: "https://www.aclu.org/"},
	},
}

// fallbackVideos are the static per-avatar video suggestions.
var fallbackVideos = map[string][]chat.Video{
	"computer-teacher": {
		{Title: "Programming for Beginners", Description: "Learn to code from scratch", Duration: "15:30", URL: "https://www.youtube.com/watch?v=zOjov2YO4Es"},
		{Title: "Web Development Tutorial", Description: "Build your first website", Duration: "22:15", URL: "https://www.youtube.com/watch?v=916GWv2Qs08"},
	},
	"mathematics-teacher": {
		{Title: "Math Fundamentals", Description: "Essential mathematical concepts", Duration: "12:20", URL: "https://www.youtube.com/watch?v=Kp2bYWRQylk"},
		{Title: "Algebra Basics", Description: "Understanding algebra", Duration: "16:40", URL: "https://www.youtube.com/watch?v=NybHckSEQBI"},
	},
	"english-teacher": {
		{Title: "English Grammar Basics", Description: "Essential grammar rules", Duration: "13:25", URL: "https://www.youtube.com/watch?v=8WJYtGj1g5Q"},
		{Title: "Writing Skills", Description: "Improve your writing", Duration: "19:10", URL: "https://www.youtube.com/watch?v=1ajte3bMroe"},
	},
	"biology-teacher": {
		{Title: "Biology Introduction", Description: "Basic life science concepts", Duration: "14:30", URL: "https://www.youtube.com/watch?v=izRvPaAWgyw"},
		{Title: "Human Body Systems", Description: "Understanding anatomy", Duration: "18:45", URL: "https://www.youtube.com/watch?v=0jbniqJ4nQc"},
	},
	"physics-teacher": {
		{Title: "Physics Fundamentals", Description: "Basic physics concepts", Duration: "16:20", URL: "https://www.youtube.com/watch?v=CQYELiTtUs8"},
		{Title: "Mechanics Explained", Description: "Motion and forces", Duration: "21:15", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
	},
	"chemistry-teacher": {
		{Title: "Chemistry Basics", Description: "Fundamental chemical concepts", Duration: "15:40", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
		{Title: "Periodic Table", Description: "Understanding elements", Duration: "19:30", URL: "https://www.youtube.com/watch?v=0RRVV4Diomg"},
	},
	"history-teacher": {
		{Title: "World History Overview", Description: "Major historical events", Duration: "17:25", URL: "https://www.youtube.com/watch?v=Yocja_N5s1I"},
		{Title: "Ancient Civilizations", Description: "Early human societies", Duration: "20:10", URL: "https://www.youtube.com/watch?v=8ZtInClXe1Q"},
	},
	"geography-teacher": {
		{Title: "Physical Geography", Description: "Earth's natural features", Duration: "16:45", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
		{Title: "World Geography", Description: "Global geographical features", Duration: "18:20", URL: "https://www.youtube.com/watch?v=0RRVV4Diomg"},
	},
	"hindi-teacher": {
		{Title: "हिंदी व्याकरण", Description: "Basic Hindi grammar rules", Duration: "14:15", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
		{Title: "हिंदी लेखन", Description: "Hindi writing skills", Duration: "16:50", URL: "https://www.youtube.com/watch?v=0RRVV4Diomg"},
	},
	"doctor": {
		{Title: "Health Basics", Description: "Fundamental health concepts", Duration: "15:30", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
		{Title: "Nutrition Guide", Description: "Healthy eating principles", Duration: "18:45", URL: "https://www.youtube.com/watch?v=0RRVV4Diomg"},
	},
	"engineer": {
		{Title: "Engineering Fundamentals", Description: "Basic engineering concepts", Duration: "16:20", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
		{Title: "Mechanical Engineering", Description: "Machines and mechanisms", Duration: "19:15", URL: "https://www.youtube.com/watch?v=0RRVV4Diomg"},
	},
	"lawyer": {
		{Title: "Legal Basics", Description: "Fundamental legal concepts", Duration: "17:40", URL: "https://www.youtube.com/watch?v=7DjsD7Hcd9U"},
		{Title: "Constitutional Law", Description: "Understanding the constitution", Duration: "20:25", URL: "https://www.youtube.com/watch?v=0RRVV4Diomg"},
	},
}
