package catalog

import "github.com/gabrielcapilla/radiogo/internal/domain"

const placeholderLogo = "radio-logos/placeholder.svg"

var builtin = []domain.Station{
	{ID: 2, Name: "Capital FM", URL: "https://media-ssl.musicradio.com/CapitalUK", Logo: placeholderLogo, Category: "Music"},
	{ID: 3, Name: "Classic FM", URL: "https://media-ssl.musicradio.com/ClassicFM", Logo: placeholderLogo, Category: "Music"},
	{ID: 4, Name: "Heart Radio", URL: "https://media-ssl.musicradio.com/HeartUK", Logo: placeholderLogo, Category: "Music"},
	{ID: 5, Name: "Smooth Radio", URL: "https://media-ssl.musicradio.com/SmoothUK", Logo: placeholderLogo, Category: "Music"},
	{ID: 8, Name: "Kiss FM", URL: "https://stream-kiss.planetradio.co.uk/kissnational.mp3", Logo: placeholderLogo, Category: "Music"},
	{ID: 9, Name: "Magic Radio", URL: "https://stream-mz.planetradio.co.uk/magicnational.mp3", Logo: placeholderLogo, Category: "Music"},
	{ID: 10, Name: "Absolute Radio", URL: "https://ais-sa2.cdnstream1.com/2320_128.mp3", Logo: placeholderLogo, Category: "Music"},
	{ID: 11, Name: "Radio X", URL: "https://media-ssl.musicradio.com/RadioXUK", Logo: placeholderLogo, Category: "Music"},
	{ID: 12, Name: "LBC Radio", URL: "https://media-ssl.musicradio.com/LBCUK", Logo: placeholderLogo, Category: "Talk"},
	{ID: 13, Name: "talkSPORT", URL: "https://radio.talksport.com/stream", Logo: placeholderLogo, Category: "Sports"},
	{ID: 15, Name: "Jazz FM", URL: "https://stream-mz.planetradio.co.uk/jazzfmmobile.mp3", Logo: placeholderLogo, Category: "Music"},
	{ID: 16, Name: "Times Radio", URL: "https://timesradio.wireless.radio/stream", Logo: placeholderLogo, Category: "Talk"},
	{ID: 17, Name: "Virgin Radio", URL: "https://radio.virginradio.co.uk/stream", Logo: placeholderLogo, Category: "Music"},
	{ID: 19, Name: "BBC Radio 1", URL: "https://stream.live.vc.bbcmedia.co.uk/bbc_radio_one", Logo: placeholderLogo, Category: "Music"},
	{ID: 20, Name: "NRJ France", URL: "https://cdn.nrjaudio.fm/audio1/fr/30001/mp3_128.mp3", Logo: placeholderLogo, Category: "Music"},
	{ID: 21, Name: "Radio Paradise", URL: "https://stream.radioparadise.com/mp3-128", Logo: placeholderLogo, Category: "Music"},
	{ID: 22, Name: "Hit FM", URL: "https://hitfm.leanstream.co/HITFM", Logo: placeholderLogo, Category: "Music"},
	{ID: 23, Name: "Fun Radio", URL: "https://streaming.radio.funradio.fr/fun-1-44-128", Logo: placeholderLogo, Category: "Music"},
	{ID: 24, Name: "Radio Swiss Pop", URL: "https://stream.srg-ssr.ch/m/rsj/mp3_128", Logo: placeholderLogo, Category: "Music"},
	{ID: 25, Name: "98.8 Kiss FM Berlin", URL: "https://stream.kissfm.de/kissfm/mp3-128", Logo: placeholderLogo, Category: "Music"},
}
