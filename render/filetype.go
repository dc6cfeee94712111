package render

import (
	"path"
	"strings"

	"github.com/pafthang/dmd/util"
)

// 链接指向的媒体类型，Discord 会为这些链接生成内嵌预览。
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
)

// MediaType 根据链接地址 dest 的文件后缀判断媒体类型，不是媒体链接时返回空串。查询串和片段不参与判断。
func MediaType(dest string) string {
	if i := strings.IndexAny(dest, "?#"); 0 <= i {
		dest = dest[:i]
	}
	ext := strings.TrimPrefix(path.Ext(dest), ".")
	if "" == ext || util.RuneCount(ext) > maxMediaFileTypeLen {
		return ""
	}
	return mediaFileTypes[strings.ToLower(ext)]
}

var maxMediaFileTypeLen = 4 // webm、heic、flac

// mediaFileTypes 列出了常见的媒体文件后缀。
var mediaFileTypes = map[string]string{
	// 图片

	"jpg":  MediaImage,
	"jpeg": MediaImage,
	"png":  MediaImage,
	"gif":  MediaImage,
	"webp": MediaImage,
	"bmp":  MediaImage,
	"heic": MediaImage,
	"avif": MediaImage,
	"svg":  MediaImage,

	// 视频

	"mp4":  MediaVideo,
	"m4v":  MediaVideo,
	"mkv":  MediaVideo,
	"webm": MediaVideo,
	"mov":  MediaVideo,

	// 音频

	"mp3":  MediaAudio,
	"m4a":  MediaAudio,
	"ogg":  MediaAudio,
	"flac": MediaAudio,
	"wav":  MediaAudio,
	"aac":  MediaAudio,
}
