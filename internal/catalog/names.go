package catalog

import "github.com/example/husnabot/pkg/models"

// bundled is the built-in catalog of the 99 names. It is the fallback
// dataset when no remote catalog is configured or reachable, and the seed
// data for an empty database. IDs equal the traditional list position.
var bundled = []models.Name{
	{Number: 1, Transliteration: "Ar-Rahman", Arabic: "الرحمن", Meaning: "The Most Merciful", Aliases: []string{"Rahman", "Rahmaan"}},
	{Number: 2, Transliteration: "Ar-Rahim", Arabic: "الرحيم", Meaning: "The Most Compassionate", Aliases: []string{"Rahim", "Raheem"}},
	{Number: 3, Transliteration: "Al-Malik", Arabic: "الملك", Meaning: "The King", Aliases: []string{"Malik"}},
	{Number: 4, Transliteration: "Al-Quddus", Arabic: "القدوس", Meaning: "The Most Holy", Aliases: []string{"Quddus", "Quddoos"}},
	{Number: 5, Transliteration: "As-Salam", Arabic: "السلام", Meaning: "The Source of Peace", Aliases: []string{"Salam", "Salaam"}},
	{Number: 6, Transliteration: "Al-Mu'min", Arabic: "المؤمن", Meaning: "The Giver of Faith", Aliases: []string{"Mumin", "Moumin"}},
	{Number: 7, Transliteration: "Al-Muhaymin", Arabic: "المهيمن", Meaning: "The Guardian", Aliases: []string{"Muhaymin", "Muhaimin"}},
	{Number: 8, Transliteration: "Al-Aziz", Arabic: "العزيز", Meaning: "The Almighty", Aliases: []string{"Aziz", "Azeez"}},
	{Number: 9, Transliteration: "Al-Jabbar", Arabic: "الجبار", Meaning: "The Compeller", Aliases: []string{"Jabbar", "Jabbaar"}},
	{Number: 10, Transliteration: "Al-Mutakabbir", Arabic: "المتكبر", Meaning: "The Supreme", Aliases: []string{"Mutakabbir"}},
	{Number: 11, Transliteration: "Al-Khaliq", Arabic: "الخالق", Meaning: "The Creator", Aliases: []string{"Khaliq", "Khaaliq"}},
	{Number: 12, Transliteration: "Al-Bari", Arabic: "البارئ", Meaning: "The Evolver", Aliases: []string{"Bari", "Baari"}},
	{Number: 13, Transliteration: "Al-Musawwir", Arabic: "المصور", Meaning: "The Fashioner", Aliases: []string{"Musawwir"}},
	{Number: 14, Transliteration: "Al-Ghaffar", Arabic: "الغفار", Meaning: "The Constant Forgiver", Aliases: []string{"Ghaffar", "Ghaffaar"}},
	{Number: 15, Transliteration: "Al-Qahhar", Arabic: "القهار", Meaning: "The All-Subduer", Aliases: []string{"Qahhar", "Qahhaar"}},
	{Number: 16, Transliteration: "Al-Wahhab", Arabic: "الوهاب", Meaning: "The Supreme Bestower", Aliases: []string{"Wahhab", "Wahhaab"}},
	{Number: 17, Transliteration: "Ar-Razzaq", Arabic: "الرزاق", Meaning: "The Provider", Aliases: []string{"Razzaq", "Razzaaq"}},
	{Number: 18, Transliteration: "Al-Fattah", Arabic: "الفتاح", Meaning: "The Supreme Opener", Aliases: []string{"Fattah", "Fattaah"}},
	{Number: 19, Transliteration: "Al-Alim", Arabic: "العليم", Meaning: "The All-Knowing", Aliases: []string{"Alim", "Aleem"}},
	{Number: 20, Transliteration: "Al-Qabid", Arabic: "القابض", Meaning: "The Withholder", Aliases: []string{"Qabid", "Qaabid"}},
	{Number: 21, Transliteration: "Al-Basit", Arabic: "الباسط", Meaning: "The Extender", Aliases: []string{"Basit", "Baasit"}},
	{Number: 22, Transliteration: "Al-Khafid", Arabic: "الخافض", Meaning: "The Reducer", Aliases: []string{"Khafid", "Khaafid"}},
	{Number: 23, Transliteration: "Ar-Rafi", Arabic: "الرافع", Meaning: "The Exalter", Aliases: []string{"Rafi", "Raafi"}},
	{Number: 24, Transliteration: "Al-Mu'izz", Arabic: "المعز", Meaning: "The Honourer", Aliases: []string{"Muizz", "Muiz"}},
	{Number: 25, Transliteration: "Al-Mudhill", Arabic: "المذل", Meaning: "The Dishonourer", Aliases: []string{"Mudhill", "Muzil"}},
	{Number: 26, Transliteration: "As-Sami", Arabic: "السميع", Meaning: "The All-Hearing", Aliases: []string{"Sami", "Samee"}},
	{Number: 27, Transliteration: "Al-Basir", Arabic: "البصير", Meaning: "The All-Seeing", Aliases: []string{"Basir", "Baseer"}},
	{Number: 28, Transliteration: "Al-Hakam", Arabic: "الحكم", Meaning: "The Impartial Judge", Aliases: []string{"Hakam"}},
	{Number: 29, Transliteration: "Al-Adl", Arabic: "العدل", Meaning: "The Utterly Just", Aliases: []string{"Adl"}},
	{Number: 30, Transliteration: "Al-Latif", Arabic: "اللطيف", Meaning: "The Subtle One", Aliases: []string{"Latif", "Lateef"}},
	{Number: 31, Transliteration: "Al-Khabir", Arabic: "الخبير", Meaning: "The All-Aware", Aliases: []string{"Khabir", "Khabeer"}},
	{Number: 32, Transliteration: "Al-Halim", Arabic: "الحليم", Meaning: "The Most Forbearing", Aliases: []string{"Halim", "Haleem"}},
	{Number: 33, Transliteration: "Al-Azim", Arabic: "العظيم", Meaning: "The Magnificent", Aliases: []string{"Azim", "Azeem"}},
	{Number: 34, Transliteration: "Al-Ghafur", Arabic: "الغفور", Meaning: "The Great Forgiver", Aliases: []string{"Ghafur", "Ghafoor"}},
	{Number: 35, Transliteration: "Ash-Shakur", Arabic: "الشكور", Meaning: "The Most Appreciative", Aliases: []string{"Shakur", "Shakoor"}},
	{Number: 36, Transliteration: "Al-Ali", Arabic: "العلي", Meaning: "The Most High", Aliases: []string{"Ali", "Aliyy"}},
	{Number: 37, Transliteration: "Al-Kabir", Arabic: "الكبير", Meaning: "The Most Great", Aliases: []string{"Kabir", "Kabeer"}},
	{Number: 38, Transliteration: "Al-Hafiz", Arabic: "الحفيظ", Meaning: "The Preserver", Aliases: []string{"Hafiz", "Hafeez"}},
	{Number: 39, Transliteration: "Al-Muqit", Arabic: "المقيت", Meaning: "The Sustainer", Aliases: []string{"Muqit", "Muqeet"}},
	{Number: 40, Transliteration: "Al-Hasib", Arabic: "الحسيب", Meaning: "The Reckoner", Aliases: []string{"Hasib", "Haseeb"}},
	{Number: 41, Transliteration: "Al-Jalil", Arabic: "الجليل", Meaning: "The Majestic", Aliases: []string{"Jalil", "Jaleel"}},
	{Number: 42, Transliteration: "Al-Karim", Arabic: "الكريم", Meaning: "The Most Generous", Aliases: []string{"Karim", "Kareem"}},
	{Number: 43, Transliteration: "Ar-Raqib", Arabic: "الرقيب", Meaning: "The Watchful", Aliases: []string{"Raqib", "Raqeeb"}},
	{Number: 44, Transliteration: "Al-Mujib", Arabic: "المجيب", Meaning: "The Responsive One", Aliases: []string{"Mujib", "Mujeeb"}},
	{Number: 45, Transliteration: "Al-Wasi", Arabic: "الواسع", Meaning: "The All-Encompassing", Aliases: []string{"Wasi", "Waasi"}},
	{Number: 46, Transliteration: "Al-Hakim", Arabic: "الحكيم", Meaning: "The All-Wise", Aliases: []string{"Hakim", "Hakeem"}},
	{Number: 47, Transliteration: "Al-Wadud", Arabic: "الودود", Meaning: "The Most Loving", Aliases: []string{"Wadud", "Wadood"}},
	{Number: 48, Transliteration: "Al-Majid", Arabic: "المجيد", Meaning: "The Glorious", Aliases: []string{"Majid", "Majeed"}},
	{Number: 49, Transliteration: "Al-Ba'ith", Arabic: "الباعث", Meaning: "The Resurrector", Aliases: []string{"Baith", "Baais"}},
	{Number: 50, Transliteration: "Ash-Shahid", Arabic: "الشهيد", Meaning: "The All-Witnessing", Aliases: []string{"Shahid", "Shaheed"}},
	{Number: 51, Transliteration: "Al-Haqq", Arabic: "الحق", Meaning: "The Absolute Truth", Aliases: []string{"Haqq", "Haq"}},
	{Number: 52, Transliteration: "Al-Wakil", Arabic: "الوكيل", Meaning: "The Trustee", Aliases: []string{"Wakil", "Wakeel"}},
	{Number: 53, Transliteration: "Al-Qawiyy", Arabic: "القوي", Meaning: "The All-Strong", Aliases: []string{"Qawiyy", "Qawi"}},
	{Number: 54, Transliteration: "Al-Matin", Arabic: "المتين", Meaning: "The Firm One", Aliases: []string{"Matin", "Mateen"}},
	{Number: 55, Transliteration: "Al-Waliyy", Arabic: "الولي", Meaning: "The Protecting Friend", Aliases: []string{"Waliyy", "Wali"}},
	{Number: 56, Transliteration: "Al-Hamid", Arabic: "الحميد", Meaning: "The Praiseworthy", Aliases: []string{"Hamid", "Hameed"}},
	{Number: 57, Transliteration: "Al-Muhsi", Arabic: "المحصي", Meaning: "The All-Enumerating", Aliases: []string{"Muhsi", "Muhsee"}},
	{Number: 58, Transliteration: "Al-Mubdi", Arabic: "المبدئ", Meaning: "The Originator", Aliases: []string{"Mubdi", "Mubdee"}},
	{Number: 59, Transliteration: "Al-Mu'id", Arabic: "المعيد", Meaning: "The Restorer", Aliases: []string{"Muid", "Mueed"}},
	{Number: 60, Transliteration: "Al-Muhyi", Arabic: "المحيي", Meaning: "The Giver of Life", Aliases: []string{"Muhyi", "Muhyee"}},
	{Number: 61, Transliteration: "Al-Mumit", Arabic: "المميت", Meaning: "The Bringer of Death", Aliases: []string{"Mumit", "Mumeet"}},
	{Number: 62, Transliteration: "Al-Hayy", Arabic: "الحي", Meaning: "The Ever-Living", Aliases: []string{"Hayy", "Hay"}},
	{Number: 63, Transliteration: "Al-Qayyum", Arabic: "القيوم", Meaning: "The Sustainer of All", Aliases: []string{"Qayyum", "Qayyoom"}},
	{Number: 64, Transliteration: "Al-Wajid", Arabic: "الواجد", Meaning: "The Perceiver", Aliases: []string{"Wajid", "Waajid"}},
	{Number: 65, Transliteration: "Al-Maajid", Arabic: "الماجد", Meaning: "The Illustrious", Aliases: []string{"Maajid"}},
	{Number: 66, Transliteration: "Al-Wahid", Arabic: "الواحد", Meaning: "The One", Aliases: []string{"Wahid", "Waahid"}},
	{Number: 67, Transliteration: "Al-Ahad", Arabic: "الأحد", Meaning: "The Indivisible", Aliases: []string{"Ahad"}},
	{Number: 68, Transliteration: "As-Samad", Arabic: "الصمد", Meaning: "The Eternal Refuge", Aliases: []string{"Samad"}},
	{Number: 69, Transliteration: "Al-Qadir", Arabic: "القادر", Meaning: "The All-Capable", Aliases: []string{"Qadir", "Qaadir"}},
	{Number: 70, Transliteration: "Al-Muqtadir", Arabic: "المقتدر", Meaning: "The All-Determining", Aliases: []string{"Muqtadir"}},
	{Number: 71, Transliteration: "Al-Muqaddim", Arabic: "المقدم", Meaning: "The Expediter", Aliases: []string{"Muqaddim"}},
	{Number: 72, Transliteration: "Al-Mu'akhkhir", Arabic: "المؤخر", Meaning: "The Delayer", Aliases: []string{"Muakhkhir", "Muakhir"}},
	{Number: 73, Transliteration: "Al-Awwal", Arabic: "الأول", Meaning: "The First", Aliases: []string{"Awwal", "Awal"}},
	{Number: 74, Transliteration: "Al-Akhir", Arabic: "الآخر", Meaning: "The Last", Aliases: []string{"Akhir", "Aakhir"}},
	{Number: 75, Transliteration: "Az-Zahir", Arabic: "الظاهر", Meaning: "The Manifest", Aliases: []string{"Zahir", "Dhahir"}},
	{Number: 76, Transliteration: "Al-Batin", Arabic: "الباطن", Meaning: "The Hidden One", Aliases: []string{"Batin", "Baatin"}},
	{Number: 77, Transliteration: "Al-Wali", Arabic: "الوالي", Meaning: "The Sole Governor", Aliases: []string{"Waali"}},
	{Number: 78, Transliteration: "Al-Muta'ali", Arabic: "المتعالي", Meaning: "The Self-Exalted", Aliases: []string{"Mutaali", "Mutaal"}},
	{Number: 79, Transliteration: "Al-Barr", Arabic: "البر", Meaning: "The Source of Goodness", Aliases: []string{"Barr"}},
	{Number: 80, Transliteration: "At-Tawwab", Arabic: "التواب", Meaning: "The Ever-Accepting of Repentance", Aliases: []string{"Tawwab", "Tawwaab"}},
	{Number: 81, Transliteration: "Al-Muntaqim", Arabic: "المنتقم", Meaning: "The Avenger", Aliases: []string{"Muntaqim"}},
	{Number: 82, Transliteration: "Al-Afuww", Arabic: "العفو", Meaning: "The Supreme Pardoner", Aliases: []string{"Afuww", "Afuw"}},
	{Number: 83, Transliteration: "Ar-Ra'uf", Arabic: "الرؤوف", Meaning: "The Most Kind", Aliases: []string{"Rauf", "Raoof"}},
	{Number: 84, Transliteration: "Malik-ul-Mulk", Arabic: "مالك الملك", Meaning: "The Master of the Kingdom", Aliases: []string{"Malikul Mulk", "Malik al-Mulk"}},
	{Number: 85, Transliteration: "Dhul-Jalali wal-Ikram", Arabic: "ذو الجلال والإكرام", Meaning: "The Lord of Glory and Honour", Aliases: []string{"Dhul Jalali wal Ikram", "Zul Jalal wal Ikram"}},
	{Number: 86, Transliteration: "Al-Muqsit", Arabic: "المقسط", Meaning: "The Just One", Aliases: []string{"Muqsit"}},
	{Number: 87, Transliteration: "Al-Jami", Arabic: "الجامع", Meaning: "The Gatherer", Aliases: []string{"Jami", "Jaami"}},
	{Number: 88, Transliteration: "Al-Ghaniyy", Arabic: "الغني", Meaning: "The Self-Sufficient", Aliases: []string{"Ghaniyy", "Ghani"}},
	{Number: 89, Transliteration: "Al-Mughni", Arabic: "المغني", Meaning: "The Enricher", Aliases: []string{"Mughni", "Mughnee"}},
	{Number: 90, Transliteration: "Al-Mani", Arabic: "المانع", Meaning: "The Preventer", Aliases: []string{"Mani", "Maani"}},
	{Number: 91, Transliteration: "Ad-Darr", Arabic: "الضار", Meaning: "The Distresser", Aliases: []string{"Darr", "Dhaarr"}},
	{Number: 92, Transliteration: "An-Nafi", Arabic: "النافع", Meaning: "The Propitious", Aliases: []string{"Nafi", "Naafi"}},
	{Number: 93, Transliteration: "An-Nur", Arabic: "النور", Meaning: "The Light", Aliases: []string{"Nur", "Noor"}},
	{Number: 94, Transliteration: "Al-Hadi", Arabic: "الهادي", Meaning: "The Guide", Aliases: []string{"Hadi", "Haadi"}},
	{Number: 95, Transliteration: "Al-Badi", Arabic: "البديع", Meaning: "The Incomparable Originator", Aliases: []string{"Badi", "Badee"}},
	{Number: 96, Transliteration: "Al-Baqi", Arabic: "الباقي", Meaning: "The Everlasting", Aliases: []string{"Baqi", "Baaqi"}},
	{Number: 97, Transliteration: "Al-Warith", Arabic: "الوارث", Meaning: "The Inheritor", Aliases: []string{"Warith", "Waris"}},
	{Number: 98, Transliteration: "Ar-Rashid", Arabic: "الرشيد", Meaning: "The Guide to the Right Path", Aliases: []string{"Rashid", "Rasheed"}},
	{Number: 99, Transliteration: "As-Sabur", Arabic: "الصبور", Meaning: "The Most Patient", Aliases: []string{"Sabur", "Saboor"}},
}

// BundledNames returns a copy of the built-in catalog with IDs assigned
// from the traditional numbering.
func BundledNames() []models.Name {
	out := make([]models.Name, len(bundled))
	copy(out, bundled)
	for i := range out {
		out[i].ID = int64(out[i].Number)
	}
	return out
}
