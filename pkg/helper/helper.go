package helper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/savioruz/futsal/pkg/constant"
)

// GenerateUniqueKey generates a unique key based on the provided map
func GenerateUniqueKey(args map[string]string) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var uniqueKey strings.Builder
	for _, k := range keys {
		uniqueKey.WriteString(fmt.Sprintf("%s=%s;", k, args[k]))
	}

	return uniqueKey.String()
}

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}
