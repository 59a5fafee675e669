// utils/images.go
package utils

import "github.com/gewnthar/imagefetch/models"

// DefaultOutputDir is where the site expects its static images.
const DefaultOutputDir = "public/images"

// ImageTable is the compiled-in list of images the site needs, in download order.
var ImageTable = []models.DownloadEntry{
	{Filename: "hero-1.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczNsoul585yfLdNLiET016DDBQj5wXZYYH2wXybYFYmlkz2Jdt9U5eTxKr0bC_xxqmVQWUr0mdYxVwu78mYSN-j9mXe0oT_nphhewV-ygGLfhPz9RfNbO6jPxApwMcpVPJrQ4Wfs3vhYtAtA6Ovbr9ds=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-2.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczPv0vouTdxMrvNGzpzLyaowLgT_fZ1Mqca6szYXmrfqDJTTrIrx6OKXukM2o1MaI-QEGsknTY3zrphaNRoZe-UKolwwWTPyvF0tmqiBm9NxY9ees5xS1PjF4UeIqJeAgGoLhHo4Ftdq9OmPkApW33uT=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-3.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczPZvMKsyIQy3xyUazciNEKqk2amLL8P8G4rXMQBP5ZQsAOku0pzSBSXMTuTjQmHkqfVajPodK2kF7nkCtXUxxYq9gYdabTOEgHCLLoQHkfxpqvLa70PJE0JlADY42JX8rPznVxQzN_pV7R9gqbTum9i=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-4.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczMO3KlFmNBIRGhBiTZQLKqTB5e92T_1-W1dFH9V__pvf2Kv6D793qFaDjMZ-XhCRzjHqFc633tKwT2LKfPfgCVgKmY3lNsdNxQDJcpzDIMeH5Z3BR9afrO1NXc59Hf8403ejBBQ9ydmQAvSIhOS_nXQ=w1386-h924-s-no-gm?authuser=1"},
	{Filename: "hero-5.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczPX1KuRWwRdgGrElv3xr337AjE4xc61C_SuXewjazBqk2tpjj4kQA_uG6jgrMCHqp1E081s5lWxyWWTBqicjMW_VBP9QJ5avZ0iIFVGvWawRR7PxRfdb3X9XR_a0z6_m1yivKoyHPkUbbAckai9hFbI=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-6.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczOqckKV5E-1gr3ELDvZC0rV6ki0qcRuMpDdCLKxLvDE5wVs1jSI3YE4JIaaQrZOcBvVsKFOUoWBGDICdrTRUcxxVpwnUMVGJ89sFHGyEeA6n6LK94WPf8hS5qLuPxBpMlzLdxeVQ6fFT1I9XlIUrn7N=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-7.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczNYyxLNcLqV7GQGEJZvGxbaIr7hxlem4CDkxmqAfa-eC7IEgHNsVqHxGLoFabpli7CUPYy_0nmpk273kOSWCm5MJ15HhRHy8e8n6yEWKIifxoy7UldCDBadau7smHS1ELF7iO4e6dPZ-eTyvvXrdwCe=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-8.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczM5qxTGl5wsfz2TuTq-aLD6cbYWlbTuA4zIemunwSF94IK1Ebu9bt1Hpj4iFz4drHD2aKRGnccaIawZKCQ0twZBAXivEaFAi1xOYvm6FvTuZoThpl6uykaQDXRoElqEllsuTbFokfEpGEF95e2eyrcB=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "hero-9.jpg", SourceURL: "https://lh3.googleusercontent.com/pw/AP1GczPepFaEBbclfqaToKwOcGEgc07ceHNaTrJVlGM3O0GQB6yHP-YkBkN_VSH6HR_aoyxjgVHQ8D2K_oX6g2EQ8lcnfHjH1xK2HL8DDqHGaTwaJt61ffkgUW0IGcYVwtmUKjtN_a8eTgRnHdp1q5nGXbZx=w1386-h924-s-no-gm?authuser=0"},
	{Filename: "testimonial-1.jpeg", SourceURL: "https://www.omkaricse.in/wp-content/uploads/2024/01/WhatsApp-Image-2024-01-25-at-3.37.37-PM.jpeg"},
	{Filename: "infrastructure-1.jpeg", SourceURL: "https://www.omkarcbse.in/wp-content/uploads/2024/01/t2.jpeg"},
	{Filename: "award-1.jpg", SourceURL: "https://www.omkaricse.in/wp-content/uploads/elementor/thumbs/378382505_177325452077317_3106850885357818811_n-qdmudtolnn8krb4nioa9a4yf6d4p5qqpiuna468zgo.jpg"},
	{Filename: "admission-1.png", SourceURL: "https://www.omkaricse.in/wp-content/uploads/2023/10/Admission@4x-1.png"},
	{Filename: "bg-subtle.png", SourceURL: "https://www.transparenttextures.com/patterns/az-subtle.png"},
	{Filename: "omkar-logo.png", SourceURL: "https://www.omkaricse.in/wp-content/uploads/2023/06/OMKAR-LOGO-WHITE-300x208.png"},
	{Filename: "omkar-all-board-logo.png", SourceURL: "https://www.omkarstate.in/wp-content/uploads/2023/03/OMKAR-ALL-BOARD-LOGO-1024x711.png"},
}

// DefaultEntries returns a copy of ImageTable so callers can append to it safely.
func DefaultEntries() []models.DownloadEntry {
	entries := make([]models.DownloadEntry, len(ImageTable))
	copy(entries, ImageTable)
	return entries
}
