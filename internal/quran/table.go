package quran

// table is indexed by surah number minus one.
var table = [SurahCount]Surah{
	{1, "الفاتحة", "Al-Fatihah", 7, Makkah},
	{2, "البقرة", "Al-Baqarah", 286, Madinah},
	{3, "آل عمران", "Aal-E-Imran", 200, Madinah},
	{4, "النساء", "An-Nisa", 176, Madinah},
	{5, "المائدة", "Al-Maidah", 120, Madinah},
	{6, "الأنعام", "Al-An'am", 165, Makkah},
	{7, "الأعراف", "Al-A'raf", 206, Makkah},
	{8, "الأنفال", "Al-Anfal", 75, Madinah},
	{9, "التوبة", "At-Tawbah", 129, Madinah},
	{10, "يونس", "Yunus", 109, Makkah},
	{11, "هود", "Hud", 123, Makkah},
	{12, "يوسف", "Yusuf", 111, Makkah},
	{13, "الرعد", "Ar-Ra'd", 43, Madinah},
	{14, "إبراهيم", "Ibrahim", 52, Makkah},
	{15, "الحجر", "Al-Hijr", 99, Makkah},
	{16, "النحل", "An-Nahl", 128, Makkah},
	{17, "الإسراء", "Al-Isra", 111, Makkah},
	{18, "الكهف", "Al-Kahf", 110, Makkah},
	{19, "مريم", "Maryam", 98, Makkah},
	{20, "طه", "Taha", 135, Makkah},
	{21, "الأنبياء", "Al-Anbiya", 112, Makkah},
	{22, "الحج", "Al-Hajj", 78, Madinah},
	{23, "المؤمنون", "Al-Mu'minun", 118, Makkah},
	{24, "النور", "An-Nur", 64, Madinah},
	{25, "الفرقان", "Al-Furqan", 77, Makkah},
	{26, "الشعراء", "Ash-Shu'ara", 227, Makkah},
	{27, "النمل", "An-Naml", 93, Makkah},
	{28, "القصص", "Al-Qasas", 88, Makkah},
	{29, "العنكبوت", "Al-Ankabut", 69, Makkah},
	{30, "الروم", "Ar-Rum", 60, Makkah},
	{31, "لقمان", "Luqman", 34, Makkah},
	{32, "السجدة", "As-Sajdah", 30, Makkah},
	{33, "الأحزاب", "Al-Ahzab", 73, Madinah},
	{34, "سبأ", "Saba", 54, Makkah},
	{35, "فاطر", "Fatir", 45, Makkah},
	{36, "يس", "Ya-Sin", 83, Makkah},
	{37, "الصافات", "As-Saffat", 182, Makkah},
	{38, "ص", "Sad", 88, Makkah},
	{39, "الزمر", "Az-Zumar", 75, Makkah},
	{40, "غافر", "Ghafir", 85, Makkah},
	{41, "فصلت", "Fussilat", 54, Makkah},
	{42, "الشورى", "Ash-Shura", 53, Makkah},
	{43, "الزخرف", "Az-Zukhruf", 89, Makkah},
	{44, "الدخان", "Ad-Dukhan", 59, Makkah},
	{45, "الجاثية", "Al-Jathiyah", 37, Makkah},
	{46, "الأحقاف", "Al-Ahqaf", 35, Makkah},
	{47, "محمد", "Muhammad", 38, Madinah},
	{48, "الفتح", "Al-Fath", 29, Madinah},
	{49, "الحجرات", "Al-Hujurat", 18, Madinah},
	{50, "ق", "Qaf", 45, Makkah},
	{51, "الذاريات", "Adh-Dhariyat", 60, Makkah},
	{52, "الطور", "At-Tur", 49, Makkah},
	{53, "النجم", "An-Najm", 62, Makkah},
	{54, "القمر", "Al-Qamar", 55, Makkah},
	{55, "الرحمن", "Ar-Rahman", 78, Makkah},
	{56, "الواقعة", "Al-Waqiah", 96, Makkah},
	{57, "الحديد", "Al-Hadid", 29, Madinah},
	{58, "المجادلة", "Al-Mujadila", 22, Madinah},
	{59, "الحشر", "Al-Hashr", 24, Madinah},
	{60, "الممتحنة", "Al-Mumtahanah", 13, Madinah},
	{61, "الصف", "As-Saff", 14, Madinah},
	{62, "الجمعة", "Al-Jumu'ah", 11, Madinah},
	{63, "المنافقون", "Al-Munafiqun", 11, Madinah},
	{64, "التغابن", "At-Taghabun", 18, Madinah},
	{65, "الطلاق", "At-Talaq", 12, Madinah},
	{66, "التحريم", "At-Tahrim", 12, Madinah},
	{67, "الملك", "Al-Mulk", 30, Makkah},
	{68, "القلم", "Al-Qalam", 52, Makkah},
	{69, "الحاقة", "Al-Haqqah", 52, Makkah},
	{70, "المعارج", "Al-Ma'arij", 44, Makkah},
	{71, "نوح", "Nuh", 28, Makkah},
	{72, "الجن", "Al-Jinn", 28, Makkah},
	{73, "المزمل", "Al-Muzzammil", 20, Makkah},
	{74, "المدثر", "Al-Muddaththir", 56, Makkah},
	{75, "القيامة", "Al-Qiyamah", 40, Makkah},
	{76, "الإنسان", "Al-Insan", 31, Madinah},
	{77, "المرسلات", "Al-Mursalat", 50, Makkah},
	{78, "النبأ", "An-Naba", 40, Makkah},
	{79, "النازعات", "An-Nazi'at", 46, Makkah},
	{80, "عبس", "Abasa", 42, Makkah},
	{81, "التكوير", "At-Takwir", 29, Makkah},
	{82, "الانفطار", "Al-Infitar", 19, Makkah},
	{83, "المطففين", "Al-Mutaffifin", 36, Makkah},
	{84, "الانشقاق", "Al-Inshiqaq", 25, Makkah},
	{85, "البروج", "Al-Buruj", 22, Makkah},
	{86, "الطارق", "At-Tariq", 17, Makkah},
	{87, "الأعلى", "Al-A'la", 19, Makkah},
	{88, "الغاشية", "Al-Ghashiyah", 26, Makkah},
	{89, "الفجر", "Al-Fajr", 30, Makkah},
	{90, "البلد", "Al-Balad", 20, Makkah},
	{91, "الشمس", "Ash-Shams", 15, Makkah},
	{92, "الليل", "Al-Layl", 21, Makkah},
	{93, "الضحى", "Ad-Duhaa", 11, Makkah},
	{94, "الشرح", "Ash-Sharh", 8, Makkah},
	{95, "التين", "At-Tin", 8, Makkah},
	{96, "العلق", "Al-Alaq", 19, Makkah},
	{97, "القدر", "Al-Qadr", 5, Makkah},
	{98, "البينة", "Al-Bayyinah", 8, Madinah},
	{99, "الزلزلة", "Az-Zalzalah", 8, Madinah},
	{100, "العاديات", "Al-Adiyat", 11, Makkah},
	{101, "القارعة", "Al-Qari'ah", 11, Makkah},
	{102, "التكاثر", "At-Takathur", 8, Makkah},
	{103, "العصر", "Al-Asr", 3, Makkah},
	{104, "الهمزة", "Al-Humazah", 9, Makkah},
	{105, "الفيل", "Al-Fil", 5, Makkah},
	{106, "قريش", "Quraysh", 4, Makkah},
	{107, "الماعون", "Al-Ma'un", 7, Makkah},
	{108, "الكوثر", "Al-Kawthar", 3, Makkah},
	{109, "الكافرون", "Al-Kafirun", 6, Makkah},
	{110, "النصر", "An-Nasr", 3, Madinah},
	{111, "المسد", "Al-Masad", 5, Makkah},
	{112, "الإخلاص", "Al-Ikhlas", 4, Makkah},
	{113, "الفلق", "Al-Falaq", 5, Makkah},
	{114, "الناس", "An-Nas", 6, Makkah},
}
