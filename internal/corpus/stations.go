package corpus

// yamanoteStations is the built-in default corpus: the 30 stations of the
// Yamanote Line in loop order, display text paired with its kana reading.
var yamanoteStations = [][2]string{
	{"東京", "とうきょう"},
	{"神田", "かんだ"},
	{"秋葉原", "あきはばら"},
	{"御徒町", "おかちまち"},
	{"上野", "うえの"},
	{"鶯谷", "うぐいすだに"},
	{"日暮里", "にっぽり"},
	{"西日暮里", "にしにっぽり"},
	{"田端", "たばた"},
	{"駒込", "こまごめ"},
	{"巣鴨", "すがも"},
	{"大塚", "おおつか"},
	{"池袋", "いけぶくろ"},
	{"目白", "めじろ"},
	{"高田馬場", "たかだのばば"},
	{"新大久保", "しんおおくぼ"},
	{"新宿", "しんじゅく"},
	{"代々木", "よよぎ"},
	{"原宿", "はらじゅく"},
	{"渋谷", "しぶや"},
	{"恵比寿", "えびす"},
	{"目黒", "めぐろ"},
	{"五反田", "ごたんだ"},
	{"大崎", "おおさき"},
	{"品川", "しながわ"},
	{"高輪ゲートウェイ", "たかなわげーとうぇい"},
	{"田町", "たまち"},
	{"浜松町", "はままつちょう"},
	{"新橋", "しんばし"},
	{"有楽町", "ゆうらくちょう"},
}

// DefaultList returns a fresh list with the built-in station corpus, all
// entries pending. Each call returns an independent copy.
func DefaultList() *List {
	l := &List{Pending: make([]Entry, 0, len(yamanoteStations))}
	for _, s := range yamanoteStations {
		l.Pending = append(l.Pending, Entry{Display: s[0], Match: Normalize(s[1])})
	}
	return l
}
