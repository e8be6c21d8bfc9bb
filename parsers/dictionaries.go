package parsers

// Curated reference lists used as keyword-matching fallbacks. All of them
// are read-only after package init and safe to share across concurrent
// parses.

// sectionHeaderNames is the fixed vocabulary of resume section headers the
// segmenter recognizes. Matching is case-insensitive with an optional
// trailing colon.
var sectionHeaderNames = []string{
	"summary",
	"professional summary",
	"profile",
	"profile summary",
	"objective",
	"career objective",
	"about",
	"about me",
	"experience",
	"work experience",
	"professional experience",
	"employment",
	"employment history",
	"career history",
	"education",
	"academic background",
	"qualifications",
	"skills",
	"technical skills",
	"core competencies",
	"certifications",
	"certificates",
	"languages",
	"interests",
	"hobbies",
	"projects",
	"awards",
	"honors",
	"volunteer experience",
	"references",
	"publications",
}

var sectionHeaderSet = func() map[string]bool {
	set := make(map[string]bool, len(sectionHeaderNames))
	for _, name := range sectionHeaderNames {
		set[name] = true
	}
	return set
}()

// commonSkills backs the tier-3 skills fallback: literal word-boundary
// matching against the whole document. Entries are kept alphanumeric so the
// word-boundary regex built from them behaves.
var commonSkills = []string{
	"python", "java", "javascript", "typescript", "golang", "ruby", "php",
	"swift", "kotlin", "scala", "sql", "html", "css", "react", "angular",
	"vue", "django", "flask", "spring", "docker", "kubernetes", "aws",
	"azure", "terraform", "git", "linux", "jenkins", "excel", "tableau",
	"agile", "scrum", "leadership", "communication", "teamwork",
	"problem solving", "project management", "data analysis",
	"machine learning", "customer service", "public speaking",
}

// commonJobTitles is checked in order; the first literal hit inside a work
// experience entry wins.
var commonJobTitles = []string{
	"senior software engineer", "staff software engineer",
	"software engineer", "software developer", "full stack developer",
	"frontend developer", "backend developer", "web developer",
	"mobile developer", "devops engineer", "site reliability engineer",
	"machine learning engineer", "data engineer", "data scientist",
	"data analyst", "business analyst", "product manager",
	"project manager", "program manager", "engineering manager",
	"technical lead", "team lead", "qa engineer", "test engineer",
	"security engineer", "systems administrator", "database administrator",
	"network engineer", "ux designer", "ui designer", "graphic designer",
	"marketing manager", "sales manager", "account manager",
	"operations manager", "financial analyst", "accountant", "consultant",
	"recruiter", "intern",
}

// degreeNames are full degree forms used to build the primary degree+field
// pattern ("<degree> in <field>"). Longer forms come first so the regex
// alternation prefers them.
var degreeNames = []string{
	"Bachelor of Science", "Bachelor of Arts", "Bachelor of Engineering",
	"Bachelor of Business Administration", "Bachelor of Fine Arts",
	"Bachelor of Technology", "Master of Science", "Master of Arts",
	"Master of Business Administration", "Master of Engineering",
	"Master of Fine Arts", "Master of Public Health", "Master of Education",
	"Doctor of Philosophy", "Doctor of Medicine", "Juris Doctor",
	"Associate of Science", "Associate of Arts", "Associate of Applied Science",
}

// degreeAbbreviations is the secondary fallback when no full degree form
// matches.
var degreeAbbreviations = []string{
	`B\.?S\.?c?\.?`, `B\.?A\.?`, `B\.?E\.?`, `B\.?Tech\.?`,
	`M\.?S\.?c?\.?`, `M\.?A\.?`, `M\.?Eng\.?`, `MBA`, `M\.?Ed\.?`,
	`Ph\.?D\.?`, `M\.?D\.?`, `J\.?D\.?`, `A\.?S\.?`, `A\.?A\.?`,
}

// commonLanguages backs the languages extractor's dictionary tier.
var commonLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Dutch", "Swedish", "Polish", "Russian", "Turkish", "Greek", "Arabic",
	"Hebrew", "Hindi", "Bengali", "Mandarin", "Cantonese", "Japanese",
	"Korean", "Vietnamese",
}

// commonIndustries backs the industries extractor. Order matters: frequency
// ties in the whole-document fallback break by position in this list.
var commonIndustries = []string{
	"technology", "software", "healthcare", "finance", "banking",
	"insurance", "education", "manufacturing", "retail", "e-commerce",
	"consulting", "marketing", "advertising", "media", "entertainment",
	"gaming", "telecommunications", "energy", "automotive", "aerospace",
	"construction", "real estate", "hospitality", "travel",
	"transportation", "logistics", "pharmaceuticals", "biotechnology",
	"agriculture", "legal", "government", "nonprofit", "fashion",
	"sports", "cybersecurity", "food and beverage",
}

// Keyword sets for proficiency normalization, checked in priority order.
// "professional working proficiency" must resolve to Fluent, so the Fluent
// set is checked before Intermediate.
var proficiencyKeywords = []struct {
	level    string
	keywords []string
}{
	{ProficiencyNative, []string{"native", "mother tongue", "bilingual"}},
	{ProficiencyFluent, []string{"fluent", "full", "professional"}},
	{ProficiencyAdvanced, []string{"advanced", "proficient", "business"}},
	{ProficiencyIntermediate, []string{"intermediate", "working", "conversational"}},
	{ProficiencyBeginner, []string{"basic", "beginner", "elementary", "limited"}},
}
