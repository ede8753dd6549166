package catalog

import "time"

const sampleCover = "https://images.pexels.com/photos/6505089/pexels-photo-6505089.jpeg?auto=compress&cs=tinysrgb&w=300&h=300"

// LocationSeed describes a location and the IDs of the songs dropped there.
type LocationSeed struct {
	ID      string
	Lat     float64
	Lng     float64
	Address string
	SongIDs []string
}

// Seed is the sample data the store is populated with at startup.
type Seed struct {
	Songs     []Song
	Locations []LocationSeed
	User      User
	Library   []Song // songs available for dropping
	Tags      []string
	Activity  []Activity
}

func mmss(m, s int) time.Duration {
	return time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// SampleData returns the sample seed with drop times relative to now.
func SampleData(now time.Time) Seed {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	songs := []Song{
		{
			ID: "1", Title: "Underwater", Artist: "권은비", Album: "Color",
			Duration: mmss(3, 21), Liked: false, Likes: 120, Plays: 1200,
			DroppedBy: "musiclover_01", Place: "강남구 구금동",
			Comment: "회사 속 무미건조까지 쫄아당겨~", DroppedAt: ago(2 * time.Hour),
		},
		{
			ID: "2", Title: "Can't Control Myself", Artist: "Taeyeon", Album: "INVU",
			Duration: mmss(3, 45), Liked: true, Likes: 340, Plays: 2100,
			DroppedBy: "kpop_fan", Place: "홍대입구역",
			Comment: "이 길을 걸을 때마다 생각나는 노래", DroppedAt: ago(5 * time.Hour),
		},
		{
			ID: "3", Title: "Spicy", Artist: "aespa", Album: "MY WORLD",
			Duration: mmss(3, 12), Liked: false, Likes: 410, Plays: 3200,
			DroppedBy: "seoul_walker", Place: "명동역",
			Comment: "붐비는 명동에 딱 맞는 비트", DroppedAt: ago(24 * time.Hour),
		},
		{
			ID: "4", Title: "UN Village", Artist: "백현", Album: "City Lights",
			Duration: mmss(3, 32), Liked: false, Likes: 95, Plays: 1800,
			DroppedBy: "city_walker", Place: "강남구 역삼동",
			Comment: "어디서 들어도 한남동으로 만들어주는 노래", DroppedAt: ago(3 * time.Hour),
		},
		{
			ID: "5", Title: "Paradise", Artist: "millic", Album: "Paradise",
			Duration: mmss(4, 12), Liked: true, Likes: 260, Plays: 2800,
			DroppedBy: "music_lover", Place: "강남구 역삼동",
			Comment: "천국이 따로 없다", DroppedAt: ago(time.Hour),
		},
		{
			ID: "6", Title: "Seven", Artist: "정국", Album: "Seven",
			Duration: mmss(3, 5), Liked: false, Likes: 520, Plays: 4200,
			DroppedBy: "bts_army", Place: "강남구 역삼동",
			Comment: "일주일 내내 듣고 싶은 노래", DroppedAt: ago(30 * time.Minute),
		},
		{
			ID: "7", Title: "LOVE DIVE", Artist: "IVE", Album: "LOVE DIVE",
			Duration: mmss(2, 58), Liked: true, Likes: 480, Plays: 3800,
			DroppedBy: "dive_into_music", Place: "강남구 역삼동",
			Comment: "사랑에 빠져버린 기분", DroppedAt: ago(45 * time.Minute),
		},
		{
			ID: "8", Title: "After LIKE", Artist: "IVE", Album: "After LIKE",
			Duration: mmss(2, 56), Liked: false, Likes: 150, Plays: 2900,
			DroppedBy: "ive_stan", Place: "강남구 역삼동",
			Comment: "좋아한 다음엔 뭐가 올까?", DroppedAt: ago(time.Hour + time.Minute),
		},
	}
	for i := range songs {
		songs[i].Cover = sampleCover
	}

	library := []Song{
		{ID: "lib-1", Title: "Can't Control Myself", Artist: "Taeyeon", Album: "INVU", Duration: mmss(3, 21), Tags: []string{"여름", "여행"}},
		{ID: "lib-2", Title: "Spicy", Artist: "aespa", Album: "MY WORLD", Duration: mmss(3, 12), Tags: []string{"Spicy", "Aespa", "스파이시"}},
		{ID: "lib-3", Title: "Super Shy", Artist: "NewJeans", Album: "Get Up", Duration: mmss(2, 34), Tags: []string{"뉴진스", "여름"}},
		{ID: "lib-4", Title: "Queencard", Artist: "(G)I-DLE", Album: "I feel", Duration: mmss(2, 41), Tags: []string{"(여자)아이들", "쇼핑"}},
		{ID: "lib-5", Title: "벚꽃 엔딩", Artist: "버스커 버스커", Album: "버스커 버스커 1집", Duration: mmss(5, 2), Tags: []string{"버스커버지", "여행"}},
		{ID: "lib-6", Title: "Canon in D", Artist: "Pachelbel", Album: "Baroque Favorites", Duration: mmss(4, 55), Tags: []string{"클래식"}},
		{ID: "lib-7", Title: "Hot Summer", Artist: "f(x)", Album: "Hot Summer", Duration: mmss(3, 50), Tags: []string{"여름", "Hot summer"}},
	}
	for i := range library {
		library[i].Cover = sampleCover
	}

	return Seed{
		Songs: songs,
		Locations: []LocationSeed{
			{ID: "1", Lat: 37.5665, Lng: 126.9780, Address: "서울특별시 중구 명동", SongIDs: []string{"1"}},
			{ID: "2", Lat: 37.5595, Lng: 126.9426, Address: "서울특별시 마포구 홍대", SongIDs: []string{"2", "3"}},
			{ID: "3", Lat: 37.5172, Lng: 127.0473, Address: "서울특별시 강남구 역삼동", SongIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		},
		User: User{
			ID:           "user1",
			Username:     "친절한 부엉이",
			Level:        3,
			Followers:    248,
			Following:    156,
			DroppedSongs: 12,
			PickedSongs:  89,
		},
		Library: library,
		Tags:    []string{"(여자)아이들", "여름", "Spicy", "Aespa", "뉴진스", "스파이시", "클래식", "여행", "버스커버지", "쇼핑"},
		Activity: []Activity{
			{Kind: ActivityDrop, Title: "좋아의 꿈", Artist: "AKMU(악동뮤지션)", Place: "구로구 구로동", Likes: 32, At: ago(time.Hour)},
			{Kind: ActivityDrop, Title: "벤치에 앉아서 듣으면 여기가 패리더라이스", Artist: "JOSEI", Place: "성동구 성수동", Likes: 248, At: ago(2 * time.Hour)},
			{Kind: ActivityPick, Title: "한국어", Artist: "MIND", Place: "마포구 홍대", Likes: 0, At: ago(24 * time.Hour)},
		},
	}
}
